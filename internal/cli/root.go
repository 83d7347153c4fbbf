package cli

import (
	"github.com/alexanderramin/clausius/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Substances service.SubstanceService
	Diagrams   service.DiagramService

	// IsInteractive reports whether stdin is a terminal. Interactive
	// commands fall back to flag-only behavior when it returns false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "clausius" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "clausius",
		Short: "Phase-diagram renderer for pure substances",
		Long: `clausius computes phase-boundary curves (melting, sublimation,
vaporization, Antoine) from a substance's thermodynamic parameters and
renders them as a pressure-temperature diagram.`,
	}

	root.AddCommand(
		newSubstanceCmd(app),
		newPlotCmd(app),
	)

	return root
}

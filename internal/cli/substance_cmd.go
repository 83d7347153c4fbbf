package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/clausius/internal/cli/formatter"
	"github.com/alexanderramin/clausius/internal/domain"
	"github.com/spf13/cobra"
)

func newSubstanceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "substance",
		Short: "Manage substance parameter sets",
	}

	cmd.AddCommand(
		newSubstanceAddCmd(app),
		newSubstanceListCmd(app),
		newSubstanceInspectCmd(app),
		newSubstanceRemoveCmd(app),
	)

	return cmd
}

func newSubstanceAddCmd(app *App) *cobra.Command {
	var sub domain.Substance

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a substance",
		Long: `Add a substance parameter set. With no flags on an interactive
terminal, an entry form walks through every parameter; otherwise all
parameters must be supplied as flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().NFlag() == 0 && app.interactive() {
				return runSubstanceWizard(cmd.Context(), app)
			}

			if err := app.Substances.Create(cmd.Context(), &sub); err != nil {
				return err
			}
			fmt.Printf("Added substance %s\n", sub.Name)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&sub.Name, "name", "", "Substance name")
	fs.Float64Var(&sub.TripleT, "triple-t", 0, "Triple-point temperature (K)")
	fs.Float64Var(&sub.TripleP, "triple-p", 0, "Triple-point pressure (Pa)")
	fs.Float64Var(&sub.CriticalT, "critical-t", 0, "Critical temperature (K)")
	fs.Float64Var(&sub.CriticalP, "critical-p", 0, "Critical pressure (Pa)")
	fs.Float64Var(&sub.EnthalpyMelt, "enthalpy-melt", 0, "Melting enthalpy (J/mol)")
	fs.Float64Var(&sub.EnthalpySub, "enthalpy-sub", 0, "Sublimation enthalpy (J/mol)")
	fs.Float64Var(&sub.EnthalpyVap, "enthalpy-vap", 0, "Vaporization enthalpy (J/mol)")
	fs.Float64Var(&sub.VolumeMelt, "volume-melt", 0, "Melting volume change (cm³/mol)")
	fs.Float64Var(&sub.AntoineTriple.A, "antoine-a-triple", 0, "Antoine A at the triple point")
	fs.Float64Var(&sub.AntoineTriple.B, "antoine-b-triple", 0, "Antoine B at the triple point")
	fs.Float64Var(&sub.AntoineTriple.C, "antoine-c-triple", 0, "Antoine C at the triple point")
	fs.Float64Var(&sub.AntoineCritical.A, "antoine-a-critical", 0, "Antoine A at the critical point")
	fs.Float64Var(&sub.AntoineCritical.B, "antoine-b-critical", 0, "Antoine B at the critical point")
	fs.Float64Var(&sub.AntoineCritical.C, "antoine-c-critical", 0, "Antoine C at the critical point")

	return cmd
}

// runSubstanceWizard collects parameters through the huh form and stores
// the result.
func runSubstanceWizard(ctx context.Context, app *App) error {
	var answers substanceAnswers
	if err := substanceForm(&answers).Run(); err != nil {
		return fmt.Errorf("running entry form: %w", err)
	}

	sub, err := answers.toSubstance()
	if err != nil {
		return err
	}
	if err := app.Substances.Create(ctx, sub); err != nil {
		return err
	}
	fmt.Printf("Added substance %s\n", sub.Name)
	return nil
}

func newSubstanceListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List substances",
		RunE: func(cmd *cobra.Command, args []string) error {
			substances, err := app.Substances.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(substances) == 0 {
				fmt.Println("No substances found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatSubstanceList(substances))
			return nil
		},
	}
}

func newSubstanceInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect NAME",
		Short: "Show a substance's parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := app.Substances.GetByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatSubstance(sub))
			return nil
		},
	}
}

func newSubstanceRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a substance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Substances.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed substance %s\n", args[0])
			return nil
		},
	}
}

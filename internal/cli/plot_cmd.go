package cli

import (
	"fmt"

	"github.com/alexanderramin/clausius/internal/cli/formatter"
	"github.com/alexanderramin/clausius/internal/domain"
	"github.com/alexanderramin/clausius/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// plotOptions holds the flag values shared by plotting commands.
type plotOptions struct {
	output  string
	samples int
	width   float64
	height  float64
	linear  bool
}

// registerPlotFlags binds the plotting flags onto fs.
func registerPlotFlags(fs *pflag.FlagSet, o *plotOptions) {
	fs.StringVarP(&o.output, "output", "o", "", "Output file (format by extension; default <name>-phase-diagram.png)")
	fs.IntVar(&o.samples, "samples", 0, "Points per curve (default 100)")
	fs.Float64Var(&o.width, "width", 0, "Figure width in inches (default 12)")
	fs.Float64Var(&o.height, "height", 0, "Figure height in inches (default 10)")
	fs.BoolVar(&o.linear, "linear", false, "Use a linear pressure axis instead of logarithmic")
}

func (o *plotOptions) request(name string) service.RenderRequest {
	scale := domain.ScaleLog
	if o.linear {
		scale = domain.ScaleLinear
	}
	return service.RenderRequest{
		SubstanceName: name,
		OutputPath:    o.output,
		Samples:       o.samples,
		WidthIn:       o.width,
		HeightIn:      o.height,
		Scale:         scale,
	}
}

func newPlotCmd(app *App) *cobra.Command {
	var opts plotOptions

	cmd := &cobra.Command{
		Use:   "plot NAME",
		Short: "Render a substance's phase diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner("rendering phase diagram")
			}
			result, err := app.Diagrams.Render(cmd.Context(), opts.request(args[0]))
			stop()
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatRenderResult(result))
			return nil
		},
	}

	registerPlotFlags(cmd.Flags(), &opts)

	return cmd
}

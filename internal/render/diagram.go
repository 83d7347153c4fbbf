// Package render turns boundary curves into a saved phase-diagram figure
// using gonum/plot. It owns no thermodynamics: curves come in as ordered
// point sequences and are drawn as-is.
package render

import (
	"fmt"
	"image/color"

	"github.com/alexanderramin/clausius/internal/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	// Figure size in inches, matching the classic 12x10 phase-diagram layout.
	DefaultWidthIn  = 12.0
	DefaultHeightIn = 10.0
)

// Marker is a labeled point drawn as an open circle (triple point,
// critical point).
type Marker struct {
	Label string
	Point domain.PhasePoint
}

// Options controls figure construction. Zero values select the defaults.
type Options struct {
	Title    string
	WidthIn  float64
	HeightIn float64
	Scale    domain.AxisScale
}

func (o Options) withDefaults() Options {
	if o.WidthIn == 0 {
		o.WidthIn = DefaultWidthIn
	}
	if o.HeightIn == 0 {
		o.HeightIn = DefaultHeightIn
	}
	if o.Scale == "" {
		o.Scale = domain.ScaleLog
	}
	return o
}

// Line colors per boundary kind.
var curveColors = map[domain.BoundaryKind]color.RGBA{
	domain.BoundaryMelting:      {R: 0x45, G: 0x85, B: 0xb1, A: 0xff},
	domain.BoundarySublimation:  {R: 0xe8, G: 0x8b, B: 0x17, A: 0xff},
	domain.BoundaryVaporization: {R: 0xd1, G: 0x2e, B: 0x2e, A: 0xff},
	domain.BoundaryAntoine:      {R: 0x2e, G: 0x8b, B: 0x3a, A: 0xff},
}

var fallbackColor = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// Build constructs the figure: one line per curve, a legend entry per
// label, axis titles, and markers for the given points.
func Build(curves []domain.BoundaryCurve, markers []Marker, opts Options) (*plot.Plot, error) {
	if len(curves) == 0 {
		return nil, fmt.Errorf("no curves to plot")
	}
	for _, c := range curves {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}
	opts = opts.withDefaults()

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Temperature (K)"
	p.Y.Label.Text = "Pressure (Pa)"
	if opts.Scale == domain.ScaleLog {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	for _, c := range curves {
		c, err := clampForScale(c, opts.Scale)
		if err != nil {
			return nil, err
		}
		line, err := plotter.NewLine(c)
		if err != nil {
			return nil, fmt.Errorf("building line for %q: %w", c.Label, err)
		}
		clr, ok := curveColors[c.Kind]
		if !ok {
			clr = fallbackColor
		}
		line.Color = clr
		line.Width = vg.Points(2)
		if c.Kind == domain.BoundaryVaporization {
			line.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		}
		p.Add(line)
		p.Legend.Add(c.Label, line)
	}

	for _, m := range markers {
		xys := plotter.XYs{{X: m.Point.T, Y: m.Point.P}}
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("building marker %q: %w", m.Label, err)
		}
		scatter.GlyphStyle.Shape = draw.RingGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(5)
		scatter.GlyphStyle.Color = color.Black
		p.Add(scatter)
		p.Legend.Add(m.Label, scatter)
	}

	return p, nil
}

// Save builds the figure and writes it to path. The image format is
// inferred from the file extension (png, svg, pdf, ...).
func Save(curves []domain.BoundaryCurve, markers []Marker, opts Options, path string) error {
	opts = opts.withDefaults()
	p, err := Build(curves, markers, opts)
	if err != nil {
		return err
	}
	w := vg.Length(opts.WidthIn) * vg.Inch
	h := vg.Length(opts.HeightIn) * vg.Inch
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("saving figure to %s: %w", path, err)
	}
	return nil
}

// clampForScale drops non-positive pressures when the Y axis is
// logarithmic, the way semilog plots clip them. A curve that loses every
// point is an error rather than a silently missing line.
func clampForScale(c domain.BoundaryCurve, scale domain.AxisScale) (domain.BoundaryCurve, error) {
	if scale != domain.ScaleLog {
		return c, nil
	}
	kept := make([]domain.PhasePoint, 0, len(c.Points))
	for _, pt := range c.Points {
		if pt.P > 0 {
			kept = append(kept, pt)
		}
	}
	if len(kept) == 0 {
		return c, fmt.Errorf("curve %q has no positive pressures to draw on a log axis", c.Label)
	}
	c.Points = kept
	return c, nil
}

package domain

import "fmt"

// PhasePoint is one temperature/pressure coordinate on a boundary curve.
type PhasePoint struct {
	T float64 // kelvin
	P float64 // pascal
}

// BoundaryCurve is an ordered sequence of coexistence points between two
// phases. Points are plotted in the order given.
type BoundaryCurve struct {
	Kind   BoundaryKind
	Label  string
	Points []PhasePoint
}

// Len returns the number of points. Together with XY this satisfies
// gonum.org/v1/plot/plotter.XYer, so curves feed the plotter directly.
func (c BoundaryCurve) Len() int {
	return len(c.Points)
}

// XY returns the temperature and pressure at index i.
func (c BoundaryCurve) XY(i int) (float64, float64) {
	p := c.Points[i]
	return p.T, p.P
}

// Validate rejects curves that cannot be rendered.
func (c BoundaryCurve) Validate() error {
	if c.Label == "" {
		return fmt.Errorf("boundary curve has no label")
	}
	if len(c.Points) == 0 {
		return fmt.Errorf("boundary curve %q has no points", c.Label)
	}
	return nil
}

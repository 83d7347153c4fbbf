package domain

import (
	"fmt"
	"time"
)

// AntoineCoefficients holds one A/B/C fit of the Antoine vapor pressure
// equation log10(P/bar) = A - B/(C + T), with T in kelvin.
type AntoineCoefficients struct {
	A float64
	B float64
	C float64
}

// Substance describes a pure substance by the thermodynamic parameters
// needed to compute its phase-boundary curves. Temperatures are kelvin,
// pressures pascal, enthalpies J/mol, melting volume cm³/mol.
type Substance struct {
	ID   string
	Name string

	TripleT   float64
	TripleP   float64
	CriticalT float64
	CriticalP float64

	EnthalpyMelt float64
	EnthalpySub  float64
	EnthalpyVap  float64

	// VolumeMelt is the molar volume change on melting. Negative for
	// substances that contract on melting (water).
	VolumeMelt float64

	// Antoine fits at the two ends of the vaporization range. Coefficients
	// are interpolated between them across the curve.
	AntoineTriple   AntoineCoefficients
	AntoineCritical AntoineCoefficients

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks that the parameter set can produce well-defined curves.
func (s *Substance) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("substance name is required")
	}
	if s.TripleT <= 0 {
		return fmt.Errorf("triple-point temperature must be positive, got %g K", s.TripleT)
	}
	if s.CriticalT <= s.TripleT {
		return fmt.Errorf("critical temperature %g K must exceed triple-point temperature %g K", s.CriticalT, s.TripleT)
	}
	if s.TripleP <= 0 {
		return fmt.Errorf("triple-point pressure must be positive, got %g Pa", s.TripleP)
	}
	if s.CriticalP <= 0 {
		return fmt.Errorf("critical pressure must be positive, got %g Pa", s.CriticalP)
	}
	if s.EnthalpyMelt <= 0 {
		return fmt.Errorf("melting enthalpy must be positive, got %g J/mol", s.EnthalpyMelt)
	}
	if s.EnthalpySub <= 0 {
		return fmt.Errorf("sublimation enthalpy must be positive, got %g J/mol", s.EnthalpySub)
	}
	if s.EnthalpyVap <= 0 {
		return fmt.Errorf("vaporization enthalpy must be positive, got %g J/mol", s.EnthalpyVap)
	}
	if s.VolumeMelt == 0 {
		return fmt.Errorf("melting volume change must be non-zero")
	}
	return nil
}

// TriplePoint returns the triple point as a plot coordinate.
func (s *Substance) TriplePoint() PhasePoint {
	return PhasePoint{T: s.TripleT, P: s.TripleP}
}

// CriticalPoint returns the critical point as a plot coordinate.
func (s *Substance) CriticalPoint() PhasePoint {
	return PhasePoint{T: s.CriticalT, P: s.CriticalP}
}

// Package thermo computes phase-boundary curves for a pure substance from
// its thermodynamic parameters. The melting curve uses the integrated
// Clapeyron equation, sublimation and vaporization use Clausius-Clapeyron,
// and a second vaporization curve uses the Antoine equation with
// coefficients interpolated between the triple-point and critical-point
// fits.
package thermo

import (
	"fmt"
	"math"

	"github.com/alexanderramin/clausius/internal/domain"
	"gonum.org/v1/gonum/floats"
)

// GasConstant is the CODATA molar gas constant in J/(mol·K).
const GasConstant = 8.31446261815324

// DefaultSamples is the number of points computed per curve.
const DefaultSamples = 100

const (
	// Temperature spans below the triple point covered by the melting and
	// sublimation curves, in kelvin.
	meltingSpan     = 5.0
	sublimationSpan = 60.0

	// Antoine fits report pressure in bar.
	barToPa = 1e5

	// Melting volume is given in cm³/mol.
	cm3ToM3 = 1e-6
)

// Config controls curve sampling. The zero value selects the defaults.
type Config struct {
	Samples     int
	GasConstant float64
}

func (c Config) withDefaults() Config {
	if c.Samples == 0 {
		c.Samples = DefaultSamples
	}
	if c.GasConstant == 0 {
		c.GasConstant = GasConstant
	}
	return c
}

func (c Config) validate() error {
	if c.Samples < 2 {
		return fmt.Errorf("sample count must be at least 2, got %d", c.Samples)
	}
	if c.GasConstant <= 0 {
		return fmt.Errorf("gas constant must be positive, got %g", c.GasConstant)
	}
	return nil
}

// Boundaries computes all four boundary curves for the substance, in the
// order melting, sublimation, vaporization, antoine.
func Boundaries(sub *domain.Substance, cfg Config) ([]domain.BoundaryCurve, error) {
	if err := sub.Validate(); err != nil {
		return nil, fmt.Errorf("validating substance: %w", err)
	}

	type builder func(*domain.Substance, Config) (domain.BoundaryCurve, error)
	var curves []domain.BoundaryCurve
	for _, build := range []builder{MeltingCurve, SublimationCurve, VaporizationCurve, AntoineCurve} {
		c, err := build(sub, cfg)
		if err != nil {
			return nil, err
		}
		curves = append(curves, c)
	}
	return curves, nil
}

// MeltingCurve computes the solid-liquid boundary over [Tt-5, Tt] K using
// the integrated Clapeyron equation:
//
//	P = Pt + (ΔHm/ΔVm)·ln(T/Tt)
func MeltingCurve(sub *domain.Substance, cfg Config) (domain.BoundaryCurve, error) {
	temps, err := sampleRange(sub.TripleT-meltingSpan, sub.TripleT, cfg)
	if err != nil {
		return domain.BoundaryCurve{}, fmt.Errorf("melting curve: %w", err)
	}

	slope := sub.EnthalpyMelt / (sub.VolumeMelt * cm3ToM3)
	points := make([]domain.PhasePoint, len(temps))
	for i, t := range temps {
		points[i] = domain.PhasePoint{
			T: t,
			P: sub.TripleP + slope*math.Log(t/sub.TripleT),
		}
	}

	return domain.BoundaryCurve{
		Kind:   domain.BoundaryMelting,
		Label:  "solid-liquid",
		Points: points,
	}, nil
}

// SublimationCurve computes the solid-gas boundary over [Tt-60, Tt] K using
// Clausius-Clapeyron with the sublimation enthalpy.
func SublimationCurve(sub *domain.Substance, cfg Config) (domain.BoundaryCurve, error) {
	cfg = cfg.withDefaults()
	temps, err := sampleRange(sub.TripleT-sublimationSpan, sub.TripleT, cfg)
	if err != nil {
		return domain.BoundaryCurve{}, fmt.Errorf("sublimation curve: %w", err)
	}

	return domain.BoundaryCurve{
		Kind:   domain.BoundarySublimation,
		Label:  "solid-gas",
		Points: clausiusClapeyron(sub, temps, sub.EnthalpySub, cfg.GasConstant),
	}, nil
}

// VaporizationCurve computes the liquid-gas boundary over [Tt, Tc] K using
// Clausius-Clapeyron with the vaporization enthalpy.
func VaporizationCurve(sub *domain.Substance, cfg Config) (domain.BoundaryCurve, error) {
	cfg = cfg.withDefaults()
	temps, err := sampleRange(sub.TripleT, sub.CriticalT, cfg)
	if err != nil {
		return domain.BoundaryCurve{}, fmt.Errorf("vaporization curve: %w", err)
	}

	return domain.BoundaryCurve{
		Kind:   domain.BoundaryVaporization,
		Label:  "liquid-gas (Clausius-Clapeyron)",
		Points: clausiusClapeyron(sub, temps, sub.EnthalpyVap, cfg.GasConstant),
	}, nil
}

// AntoineCurve computes the liquid-gas boundary over [Tt, Tc] K using the
// Antoine equation. A, B and C are interpolated linearly from the
// triple-point fit to the critical-point fit across the samples, so the
// curve blends the two validity ranges.
func AntoineCurve(sub *domain.Substance, cfg Config) (domain.BoundaryCurve, error) {
	temps, err := sampleRange(sub.TripleT, sub.CriticalT, cfg)
	if err != nil {
		return domain.BoundaryCurve{}, fmt.Errorf("antoine curve: %w", err)
	}

	n := len(temps)
	as := floats.Span(make([]float64, n), sub.AntoineTriple.A, sub.AntoineCritical.A)
	bs := floats.Span(make([]float64, n), sub.AntoineTriple.B, sub.AntoineCritical.B)
	cs := floats.Span(make([]float64, n), sub.AntoineTriple.C, sub.AntoineCritical.C)

	points := make([]domain.PhasePoint, n)
	for i, t := range temps {
		if cs[i]+t == 0 {
			return domain.BoundaryCurve{}, fmt.Errorf("antoine curve: C+T is zero at T=%g K", t)
		}
		points[i] = domain.PhasePoint{
			T: t,
			P: math.Pow(10, as[i]-bs[i]/(cs[i]+t)) * barToPa,
		}
	}

	return domain.BoundaryCurve{
		Kind:   domain.BoundaryAntoine,
		Label:  "liquid-gas (Antoine)",
		Points: points,
	}, nil
}

// clausiusClapeyron evaluates P = Pt·exp((ΔH/R)·(1/Tt - 1/T)) over temps.
func clausiusClapeyron(sub *domain.Substance, temps []float64, enthalpy, gasConstant float64) []domain.PhasePoint {
	points := make([]domain.PhasePoint, len(temps))
	for i, t := range temps {
		points[i] = domain.PhasePoint{
			T: t,
			P: sub.TripleP * math.Exp((enthalpy/gasConstant)*(1/sub.TripleT-1/t)),
		}
	}
	return points
}

// sampleRange returns cfg.Samples evenly spaced temperatures over [lo, hi].
// Non-positive temperatures are rejected: they would poison the logarithms
// and reciprocals in every boundary equation.
func sampleRange(lo, hi float64, cfg Config) ([]float64, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if lo <= 0 {
		return nil, fmt.Errorf("temperature range [%g, %g] K extends to or below absolute zero", lo, hi)
	}
	if hi <= lo {
		return nil, fmt.Errorf("temperature range [%g, %g] K is empty", lo, hi)
	}
	return floats.Span(make([]float64, cfg.Samples), lo, hi), nil
}

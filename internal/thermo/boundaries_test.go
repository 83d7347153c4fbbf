package thermo

import (
	"math"
	"testing"

	"github.com/alexanderramin/clausius/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// water returns a parameter set for water (NIST values).
func water() *domain.Substance {
	return &domain.Substance{
		Name:         "water",
		TripleT:      273.16,
		TripleP:      611.657,
		CriticalT:    647.096,
		CriticalP:    22.064e6,
		EnthalpyMelt: 6010,
		EnthalpySub:  51060,
		EnthalpyVap:  40660,
		VolumeMelt:   -1.63,
		AntoineTriple: domain.AntoineCoefficients{
			A: 4.6543, B: 1435.264, C: -64.848,
		},
		AntoineCritical: domain.AntoineCoefficients{
			A: 3.55959, B: 643.748, C: -198.043,
		},
	}
}

func TestBoundaries_ReturnsFourCurvesInOrder(t *testing.T) {
	curves, err := Boundaries(water(), Config{})
	require.NoError(t, err)
	require.Len(t, curves, 4)

	assert.Equal(t, domain.BoundaryMelting, curves[0].Kind)
	assert.Equal(t, domain.BoundarySublimation, curves[1].Kind)
	assert.Equal(t, domain.BoundaryVaporization, curves[2].Kind)
	assert.Equal(t, domain.BoundaryAntoine, curves[3].Kind)

	for _, c := range curves {
		assert.Len(t, c.Points, DefaultSamples, "curve %s", c.Label)
		assert.NotEmpty(t, c.Label)
	}
}

func TestMeltingCurve_EndsAtTriplePoint(t *testing.T) {
	sub := water()
	curve, err := MeltingCurve(sub, Config{})
	require.NoError(t, err)

	first := curve.Points[0]
	last := curve.Points[len(curve.Points)-1]

	assert.InDelta(t, sub.TripleT-5, first.T, 1e-9)
	assert.InDelta(t, sub.TripleT, last.T, 1e-9)
	assert.InDelta(t, sub.TripleP, last.P, 1e-6, "curve must pass through the triple point")
}

func TestMeltingCurve_NegativeVolumeSlopesBackward(t *testing.T) {
	// Water contracts on melting, so pressure rises as temperature drops.
	curve, err := MeltingCurve(water(), Config{})
	require.NoError(t, err)

	first := curve.Points[0]
	last := curve.Points[len(curve.Points)-1]
	assert.Greater(t, first.P, last.P)
}

func TestVaporizationCurve_StartsAtTriplePointAndRises(t *testing.T) {
	sub := water()
	curve, err := VaporizationCurve(sub, Config{})
	require.NoError(t, err)

	assert.InDelta(t, sub.TripleP, curve.Points[0].P, 1e-6)
	for i := 1; i < len(curve.Points); i++ {
		assert.Greater(t, curve.Points[i].P, curve.Points[i-1].P,
			"vapor pressure must increase with temperature")
	}
}

func TestSublimationCurve_StaysBelowTriplePressure(t *testing.T) {
	sub := water()
	curve, err := SublimationCurve(sub, Config{})
	require.NoError(t, err)

	for _, p := range curve.Points[:len(curve.Points)-1] {
		assert.Less(t, p.P, sub.TripleP)
		assert.Greater(t, p.P, 0.0)
	}
	assert.InDelta(t, sub.TripleP, curve.Points[len(curve.Points)-1].P, 1e-6)
}

func TestAntoineCurve_MatchesHandComputedEndpoint(t *testing.T) {
	sub := water()
	curve, err := AntoineCurve(sub, Config{})
	require.NoError(t, err)

	// First point uses the pure triple-point fit.
	a, b, c := sub.AntoineTriple.A, sub.AntoineTriple.B, sub.AntoineTriple.C
	want := math.Pow(10, a-b/(c+sub.TripleT)) * 1e5
	assert.InDelta(t, want, curve.Points[0].P, want*1e-9)

	// Last point uses the pure critical-point fit.
	a, b, c = sub.AntoineCritical.A, sub.AntoineCritical.B, sub.AntoineCritical.C
	want = math.Pow(10, a-b/(c+sub.CriticalT)) * 1e5
	last := curve.Points[len(curve.Points)-1]
	assert.InDelta(t, want, last.P, want*1e-9)
}

func TestBoundaries_Deterministic(t *testing.T) {
	first, err := Boundaries(water(), Config{})
	require.NoError(t, err)
	second, err := Boundaries(water(), Config{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBoundaries_CustomSampleCount(t *testing.T) {
	curves, err := Boundaries(water(), Config{Samples: 10})
	require.NoError(t, err)
	for _, c := range curves {
		assert.Len(t, c.Points, 10)
	}
}

func TestBoundaries_RejectsSingleSample(t *testing.T) {
	_, err := Boundaries(water(), Config{Samples: 1})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sample count")
}

func TestBoundaries_RejectsInvalidSubstance(t *testing.T) {
	sub := water()
	sub.CriticalT = sub.TripleT // collapses the vaporization range
	_, err := Boundaries(sub, Config{})
	assert.Error(t, err)
}

func TestSublimationCurve_RejectsRangeBelowAbsoluteZero(t *testing.T) {
	sub := water()
	sub.TripleT = 50 // Tt-60 would be negative
	sub.CriticalT = 100
	_, err := SublimationCurve(sub, Config{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "absolute zero")
}

func TestConfig_GasConstantOverride(t *testing.T) {
	sub := water()
	def, err := VaporizationCurve(sub, Config{})
	require.NoError(t, err)
	alt, err := VaporizationCurve(sub, Config{GasConstant: 10})
	require.NoError(t, err)

	// A larger R flattens the exponential, so mid-curve pressures differ.
	mid := len(def.Points) / 2
	assert.NotEqual(t, def.Points[mid].P, alt.Points[mid].P)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubstance() *Substance {
	return &Substance{
		Name:         "carbon dioxide",
		TripleT:      216.58,
		TripleP:      518500,
		CriticalT:    304.13,
		CriticalP:    7.377e6,
		EnthalpyMelt: 9020,
		EnthalpySub:  25200,
		EnthalpyVap:  16500,
		VolumeMelt:   5.3,
		AntoineTriple: AntoineCoefficients{
			A: 6.81228, B: 1301.679, C: -3.494,
		},
		AntoineCritical: AntoineCoefficients{
			A: 6.81228, B: 1301.679, C: -3.494,
		},
	}
}

func TestSubstance_Validate(t *testing.T) {
	require.NoError(t, validSubstance().Validate())

	tests := []struct {
		name    string
		mutate  func(*Substance)
		wantErr string
	}{
		{"empty name", func(s *Substance) { s.Name = "" }, "name is required"},
		{"zero triple temperature", func(s *Substance) { s.TripleT = 0 }, "triple-point temperature"},
		{"critical below triple", func(s *Substance) { s.CriticalT = 100 }, "must exceed"},
		{"zero triple pressure", func(s *Substance) { s.TripleP = 0 }, "triple-point pressure"},
		{"negative critical pressure", func(s *Substance) { s.CriticalP = -1 }, "critical pressure"},
		{"zero melting enthalpy", func(s *Substance) { s.EnthalpyMelt = 0 }, "melting enthalpy"},
		{"zero sublimation enthalpy", func(s *Substance) { s.EnthalpySub = 0 }, "sublimation enthalpy"},
		{"zero vaporization enthalpy", func(s *Substance) { s.EnthalpyVap = 0 }, "vaporization enthalpy"},
		{"zero melting volume", func(s *Substance) { s.VolumeMelt = 0 }, "melting volume"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSubstance()
			tt.mutate(s)
			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSubstance_PointAccessors(t *testing.T) {
	s := validSubstance()
	assert.Equal(t, PhasePoint{T: 216.58, P: 518500}, s.TriplePoint())
	assert.Equal(t, PhasePoint{T: 304.13, P: 7.377e6}, s.CriticalPoint())
}

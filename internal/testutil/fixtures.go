package testutil

import (
	"time"

	"github.com/alexanderramin/clausius/internal/domain"
	"github.com/google/uuid"
)

// Substance options
type SubstanceOption func(*domain.Substance)

func WithTriplePoint(t, p float64) SubstanceOption {
	return func(s *domain.Substance) {
		s.TripleT = t
		s.TripleP = p
	}
}

func WithCriticalPoint(t, p float64) SubstanceOption {
	return func(s *domain.Substance) {
		s.CriticalT = t
		s.CriticalP = p
	}
}

func WithVolumeMelt(v float64) SubstanceOption {
	return func(s *domain.Substance) {
		s.VolumeMelt = v
	}
}

func WithAntoine(triple, critical domain.AntoineCoefficients) SubstanceOption {
	return func(s *domain.Substance) {
		s.AntoineTriple = triple
		s.AntoineCritical = critical
	}
}

// NewTestSubstance builds a substance with argon-like parameters, which keep
// every boundary equation well-defined.
func NewTestSubstance(name string, opts ...SubstanceOption) *domain.Substance {
	now := time.Now().UTC()
	s := &domain.Substance{
		ID:           uuid.New().String(),
		Name:         name,
		TripleT:      83.81,
		TripleP:      68900,
		CriticalT:    150.69,
		CriticalP:    4.863e6,
		EnthalpyMelt: 1180,
		EnthalpySub:  7740,
		EnthalpyVap:  6530,
		VolumeMelt:   3.5,
		AntoineTriple: domain.AntoineCoefficients{
			A: 3.29555, B: 215.24, C: -22.233,
		},
		AntoineCritical: domain.AntoineCoefficients{
			A: 3.29555, B: 215.24, C: -22.233,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

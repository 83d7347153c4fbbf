package service

import (
	"context"

	"github.com/alexanderramin/clausius/internal/domain"
)

type SubstanceService interface {
	Create(ctx context.Context, s *domain.Substance) error
	GetByName(ctx context.Context, name string) (*domain.Substance, error)
	List(ctx context.Context) ([]*domain.Substance, error)
	Update(ctx context.Context, s *domain.Substance) error
	Delete(ctx context.Context, name string) error
}

// RenderRequest describes one diagram to produce. Either SubstanceName
// (resolved against the store) or an inline Substance must be set.
type RenderRequest struct {
	SubstanceName string
	Substance     *domain.Substance

	OutputPath string // default "<name>-phase-diagram.png"
	Samples    int
	WidthIn    float64
	HeightIn   float64
	Scale      domain.AxisScale
}

// CurveSummary reports one rendered curve.
type CurveSummary struct {
	Kind   domain.BoundaryKind
	Label  string
	Points int
}

// RenderResult holds the outcome of a diagram render.
type RenderResult struct {
	Substance  *domain.Substance
	OutputPath string
	Curves     []CurveSummary
}

type DiagramService interface {
	Render(ctx context.Context, req RenderRequest) (*RenderResult, error)
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/clausius/internal/domain"
	"github.com/alexanderramin/clausius/internal/render"
	"github.com/alexanderramin/clausius/internal/repository"
	"github.com/alexanderramin/clausius/internal/thermo"
)

type diagramService struct {
	substances repository.SubstanceRepo
}

func NewDiagramService(substances repository.SubstanceRepo) DiagramService {
	return &diagramService{substances: substances}
}

func (s *diagramService) Render(ctx context.Context, req RenderRequest) (*RenderResult, error) {
	sub, err := s.resolveSubstance(ctx, req)
	if err != nil {
		return nil, err
	}

	curves, err := thermo.Boundaries(sub, thermo.Config{Samples: req.Samples})
	if err != nil {
		return nil, fmt.Errorf("computing boundaries for %s: %w", sub.Name, err)
	}

	markers := []render.Marker{
		{Label: "triple point", Point: sub.TriplePoint()},
		{Label: "critical point", Point: sub.CriticalPoint()},
	}

	path := req.OutputPath
	if path == "" {
		path = defaultOutputPath(sub.Name)
	}

	opts := render.Options{
		Title:    "Phase diagram of " + sub.Name,
		WidthIn:  req.WidthIn,
		HeightIn: req.HeightIn,
		Scale:    req.Scale,
	}
	if err := render.Save(curves, markers, opts, path); err != nil {
		return nil, err
	}

	result := &RenderResult{Substance: sub, OutputPath: path}
	for _, c := range curves {
		result.Curves = append(result.Curves, CurveSummary{
			Kind:   c.Kind,
			Label:  c.Label,
			Points: len(c.Points),
		})
	}
	return result, nil
}

func (s *diagramService) resolveSubstance(ctx context.Context, req RenderRequest) (*domain.Substance, error) {
	if req.Substance != nil {
		if err := req.Substance.Validate(); err != nil {
			return nil, err
		}
		return req.Substance, nil
	}
	if req.SubstanceName == "" {
		return nil, fmt.Errorf("substance name is required")
	}
	sub, err := s.substances.GetByName(ctx, req.SubstanceName)
	if err != nil {
		return nil, fmt.Errorf("resolving substance %q: %w", req.SubstanceName, err)
	}
	return sub, nil
}

func defaultOutputPath(name string) string {
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
	return slug + "-phase-diagram.png"
}

package repository

import (
	"context"

	"github.com/alexanderramin/clausius/internal/domain"
)

type SubstanceRepo interface {
	Create(ctx context.Context, s *domain.Substance) error
	GetByID(ctx context.Context, id string) (*domain.Substance, error)
	GetByName(ctx context.Context, name string) (*domain.Substance, error)
	List(ctx context.Context) ([]*domain.Substance, error)
	Update(ctx context.Context, s *domain.Substance) error
	Delete(ctx context.Context, id string) error
}

package service

import (
	"context"
	"time"

	"github.com/alexanderramin/clausius/internal/domain"
	"github.com/alexanderramin/clausius/internal/repository"
	"github.com/google/uuid"
)

type substanceService struct {
	substances repository.SubstanceRepo
}

func NewSubstanceService(substances repository.SubstanceRepo) SubstanceService {
	return &substanceService{substances: substances}
}

func (s *substanceService) Create(ctx context.Context, sub *domain.Substance) error {
	if err := sub.Validate(); err != nil {
		return err
	}
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	return s.substances.Create(ctx, sub)
}

func (s *substanceService) GetByName(ctx context.Context, name string) (*domain.Substance, error) {
	return s.substances.GetByName(ctx, name)
}

func (s *substanceService) List(ctx context.Context) ([]*domain.Substance, error) {
	return s.substances.List(ctx)
}

func (s *substanceService) Update(ctx context.Context, sub *domain.Substance) error {
	if err := sub.Validate(); err != nil {
		return err
	}
	sub.UpdatedAt = time.Now().UTC()
	return s.substances.Update(ctx, sub)
}

func (s *substanceService) Delete(ctx context.Context, name string) error {
	sub, err := s.substances.GetByName(ctx, name)
	if err != nil {
		return err
	}
	return s.substances.Delete(ctx, sub.ID)
}

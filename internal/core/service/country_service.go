package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tripnest/vacations-api/internal/core/domain"
	"github.com/tripnest/vacations-api/internal/core/ports"
)

type CountryService struct {
	repo ports.CountryRepository
	log  zerolog.Logger
}

func NewCountryService(repo ports.CountryRepository, log zerolog.Logger) *CountryService {
	return &CountryService{repo: repo, log: log}
}

func (s *CountryService) Create(ctx context.Context, name string) (*domain.Country, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: country name is required", domain.ErrValidation)
	}
	created, err := s.repo.Create(ctx, &domain.Country{Name: name})
	if err != nil {
		return nil, fmt.Errorf("create country: %w", err)
	}
	s.log.Info().Int64("country_id", created.ID).Str("name", name).Msg("country created")
	return created, nil
}

func (s *CountryService) Get(ctx context.Context, id int64) (*domain.Country, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CountryService) List(ctx context.Context) ([]*domain.Country, error) {
	return s.repo.List(ctx)
}

func (s *CountryService) Rename(ctx context.Context, id int64, name string) (*domain.Country, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: country name is required", domain.ErrValidation)
	}
	country, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	country.Name = name
	if err := s.repo.Update(ctx, country); err != nil {
		return nil, fmt.Errorf("rename country: %w", err)
	}
	return country, nil
}

func (s *CountryService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

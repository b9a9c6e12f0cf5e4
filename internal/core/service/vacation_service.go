package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tripnest/vacations-api/internal/core/domain"
	"github.com/tripnest/vacations-api/internal/core/ports"
)

const (
	maxVacationPrice = 10000
	defaultCurrency  = "ILS"
)

// VacationService manages vacation offers and decorates reads with like
// counts.
type VacationService struct {
	repo      ports.VacationRepository
	countries ports.CountryRepository
	likes     ports.LikeRepository
	log       zerolog.Logger
}

func NewVacationService(
	repo ports.VacationRepository,
	countries ports.CountryRepository,
	likes ports.LikeRepository,
	log zerolog.Logger,
) *VacationService {
	return &VacationService{repo: repo, countries: countries, likes: likes, log: log}
}

func (s *VacationService) validate(ctx context.Context, in *ports.VacationInput) error {
	if in.Description == "" {
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if in.StartsAt.IsZero() || in.EndsAt.IsZero() || !in.EndsAt.After(in.StartsAt) {
		return fmt.Errorf("%w: vacation must end after it starts", domain.ErrValidation)
	}
	if in.Price < 0 || in.Price > maxVacationPrice {
		return fmt.Errorf("%w: price must be between 0 and %d", domain.ErrValidation, maxVacationPrice)
	}
	if in.Currency == "" {
		in.Currency = defaultCurrency
	}
	if _, err := s.countries.FindByID(ctx, in.CountryID); err != nil {
		if errors.Is(err, domain.ErrCountryNotFound) {
			return domain.ErrCountryNotFound
		}
		return fmt.Errorf("validate vacation: %w", err)
	}
	return nil
}

func (s *VacationService) Create(ctx context.Context, in ports.VacationInput) (*domain.Vacation, error) {
	if err := s.validate(ctx, &in); err != nil {
		return nil, err
	}
	vacation := &domain.Vacation{
		CountryID:   in.CountryID,
		Description: in.Description,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
		Price:       in.Price,
		Currency:    in.Currency,
		ImageName:   in.ImageName,
	}
	created, err := s.repo.Create(ctx, vacation)
	if err != nil {
		return nil, fmt.Errorf("create vacation: %w", err)
	}
	s.log.Info().Int64("vacation_id", created.ID).Int64("country_id", in.CountryID).Msg("vacation created")
	return created, nil
}

func (s *VacationService) Get(ctx context.Context, id int64) (*ports.VacationView, error) {
	vacation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.likes.CountForVacation(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Int64("vacation_id", id).Msg("like count failed")
		count = 0
	}
	return &ports.VacationView{Vacation: *vacation, Likes: count}, nil
}

func (s *VacationService) List(ctx context.Context) ([]ports.VacationView, error) {
	vacations, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vacations: %w", err)
	}
	views := make([]ports.VacationView, 0, len(vacations))
	for _, v := range vacations {
		count, err := s.likes.CountForVacation(ctx, v.ID)
		if err != nil {
			s.log.Warn().Err(err).Int64("vacation_id", v.ID).Msg("like count failed")
			count = 0
		}
		views = append(views, ports.VacationView{Vacation: *v, Likes: count})
	}
	return views, nil
}

func (s *VacationService) Update(ctx context.Context, id int64, in ports.VacationInput) (*domain.Vacation, error) {
	if err := s.validate(ctx, &in); err != nil {
		return nil, err
	}
	vacation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	vacation.CountryID = in.CountryID
	vacation.Description = in.Description
	vacation.StartsAt = in.StartsAt
	vacation.EndsAt = in.EndsAt
	vacation.Price = in.Price
	vacation.Currency = in.Currency
	if in.ImageName != "" {
		vacation.ImageName = in.ImageName
	}
	if err := s.repo.Update(ctx, vacation); err != nil {
		return nil, fmt.Errorf("update vacation: %w", err)
	}
	return vacation, nil
}

func (s *VacationService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	// Orphaned likes are useless once the vacation is gone.
	if _, err := s.likes.DeleteForVacation(ctx, id); err != nil {
		s.log.Warn().Err(err).Int64("vacation_id", id).Msg("failed to clear likes of deleted vacation")
	}
	s.log.Info().Int64("vacation_id", id).Msg("vacation deleted")
	return nil
}

package ports

import (
	"context"

	"github.com/tripnest/vacations-api/internal/core/domain"
)

// CountryRepository persists destination countries.
type CountryRepository interface {
	Create(ctx context.Context, country *domain.Country) (*domain.Country, error)
	FindByID(ctx context.Context, id int64) (*domain.Country, error)
	List(ctx context.Context) ([]*domain.Country, error)
	Update(ctx context.Context, country *domain.Country) error
	Delete(ctx context.Context, id int64) error
}

// VacationRepository persists vacation offers.
type VacationRepository interface {
	Create(ctx context.Context, vacation *domain.Vacation) (*domain.Vacation, error)
	FindByID(ctx context.Context, id int64) (*domain.Vacation, error)
	List(ctx context.Context) ([]*domain.Vacation, error)
	Update(ctx context.Context, vacation *domain.Vacation) error
	Delete(ctx context.Context, id int64) error
}

// LikeRepository persists the user↔vacation like relation.
type LikeRepository interface {
	// Add records a like; returns false when the pair already existed.
	Add(ctx context.Context, userID, vacationID int64) (bool, error)
	// Remove deletes a like; returns false when there was nothing to delete.
	Remove(ctx context.Context, userID, vacationID int64) (bool, error)
	CountForVacation(ctx context.Context, vacationID int64) (int64, error)
	ListForUser(ctx context.Context, userID int64) ([]int64, error)
	// DeleteForVacation clears all likes of a removed vacation.
	DeleteForVacation(ctx context.Context, vacationID int64) (int64, error)
}

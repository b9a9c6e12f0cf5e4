package ports

import (
	"context"
	"time"

	"github.com/tripnest/vacations-api/internal/core/domain"
)

// CountryService manages the destination catalog.
type CountryService interface {
	Create(ctx context.Context, name string) (*domain.Country, error)
	Get(ctx context.Context, id int64) (*domain.Country, error)
	List(ctx context.Context) ([]*domain.Country, error)
	Rename(ctx context.Context, id int64, name string) (*domain.Country, error)
	Delete(ctx context.Context, id int64) error
}

// VacationInput carries all writable vacation fields.
type VacationInput struct {
	CountryID   int64
	Description string
	StartsAt    time.Time
	EndsAt      time.Time
	Price       float64
	Currency    string
	ImageName   string
}

// VacationView is a vacation decorated with its like count.
type VacationView struct {
	domain.Vacation
	Likes int64 `json:"likes"`
}

// VacationService manages vacation offers.
type VacationService interface {
	Create(ctx context.Context, in VacationInput) (*domain.Vacation, error)
	Get(ctx context.Context, id int64) (*VacationView, error)
	List(ctx context.Context) ([]VacationView, error)
	Update(ctx context.Context, id int64, in VacationInput) (*domain.Vacation, error)
	Delete(ctx context.Context, id int64) error
}

// LikeService manages likes on behalf of authenticated users.
type LikeService interface {
	Like(ctx context.Context, userID, vacationID int64) error
	Unlike(ctx context.Context, userID, vacationID int64) error
	LikedByUser(ctx context.Context, userID int64) ([]int64, error)
}

// UserService is the administrative surface over accounts.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, in UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	EmailExists(ctx context.Context, email string) (bool, error)
}

// UserUpdate carries optional account changes; nil fields stay untouched.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	Role      *domain.Role
}

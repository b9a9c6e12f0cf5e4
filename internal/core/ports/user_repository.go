package ports

import (
	"context"

	"github.com/tripnest/vacations-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts. Lookups return
// domain.ErrUserNotFound when no record matches; any other error means the
// store itself failed and callers must treat it as such (fail closed).
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
	EmailExists(ctx context.Context, email string) (bool, error)
}

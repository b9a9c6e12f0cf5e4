package ports

import (
	"context"

	"github.com/tripnest/vacations-api/internal/core/domain"
)

// RegisterInput carries the fields needed to create an account.
// Role is always Member on creation; promotion is an admin update.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginResult is the sanitized outcome of a successful login.
type LoginResult struct {
	User  domain.User
	Token string
}

// AuthService orchestrates registration, login and token-to-profile lookups.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Profile resolves the current account for a verified identity.
	Profile(ctx context.Context, userID int64) (*domain.User, error)
}

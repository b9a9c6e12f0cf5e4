package ports

import (
	"context"

	"github.com/tripnest/vacations-api/internal/core/domain"
)

// BanService is the administrative surface over ban records.
type BanService interface {
	// Ban restricts a user for the given number of days (must be > 0).
	Ban(ctx context.Context, userID int64, reason string, days int) (*domain.Ban, error)
	// IsBanned reports whether at least one active ban exists; when several
	// overlap, the one expiring last is returned.
	IsBanned(ctx context.Context, userID int64) (bool, *domain.Ban, error)
	ActiveBans(ctx context.Context, userID int64) ([]domain.Ban, error)
	// Unban deletes the active records and returns how many were removed.
	Unban(ctx context.Context, userID int64) (int64, error)
}

package ports

import (
	"context"
	"time"

	"github.com/tripnest/vacations-api/internal/core/domain"
)

// BanRepository persists ban records. History is append-only: expired rows
// are never touched, only active ones can be deleted by an unban.
type BanRepository interface {
	Insert(ctx context.Context, ban *domain.Ban) (*domain.Ban, error)
	// ActiveForUser returns records with until_at strictly after now,
	// ordered by until_at descending (latest-expiring first).
	ActiveForUser(ctx context.Context, userID int64, now time.Time) ([]domain.Ban, error)
	// DeleteActive removes exactly the records active at now and returns
	// how many were deleted.
	DeleteActive(ctx context.Context, userID int64, now time.Time) (int64, error)
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tripnest/vacations-api/internal/api/metrics"
	"github.com/tripnest/vacations-api/internal/core/domain"
	"github.com/tripnest/vacations-api/internal/core/ports"
)

// BanService manages time-bounded account restrictions. "Banned" always
// means "at least one record with until_at in the future exists" — there is
// no cached flag to get stale.
type BanService struct {
	repo ports.BanRepository
	log  zerolog.Logger
}

func NewBanService(repo ports.BanRepository, log zerolog.Logger) *BanService {
	return &BanService{repo: repo, log: log}
}

func (s *BanService) Ban(ctx context.Context, userID int64, reason string, days int) (*domain.Ban, error) {
	if days <= 0 {
		return nil, domain.ErrInvalidDuration
	}

	now := time.Now().UTC()
	ban := &domain.Ban{
		UserID:    userID,
		Reason:    reason,
		UntilAt:   now.AddDate(0, 0, days),
		CreatedAt: now,
	}
	created, err := s.repo.Insert(ctx, ban)
	if err != nil {
		return nil, fmt.Errorf("create ban: %w", err)
	}

	metrics.BansCreatedTotal.Inc()
	s.log.Info().
		Int64("user_id", userID).
		Int("days", days).
		Time("until_at", created.UntilAt).
		Msg("ban created")
	return created, nil
}

func (s *BanService) ActiveBans(ctx context.Context, userID int64) ([]domain.Ban, error) {
	bans, err := s.repo.ActiveForUser(ctx, userID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("active bans: %w", err)
	}
	return bans, nil
}

// IsBanned returns the latest-expiring active ban, which is the one
// reported to the user.
func (s *BanService) IsBanned(ctx context.Context, userID int64) (bool, *domain.Ban, error) {
	active, err := s.ActiveBans(ctx, userID)
	if err != nil {
		return false, nil, err
	}
	if len(active) == 0 {
		return false, nil, nil
	}
	return true, &active[0], nil
}

// Unban deletes the records active at this instant; expired history stays.
func (s *BanService) Unban(ctx context.Context, userID int64) (int64, error) {
	deleted, err := s.repo.DeleteActive(ctx, userID, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("unban: %w", err)
	}
	if deleted > 0 {
		s.log.Info().Int64("user_id", userID).Int64("deleted", deleted).Msg("active bans cleared")
	}
	return deleted, nil
}

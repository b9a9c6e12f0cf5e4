package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tripnest/vacations-api/internal/api/metrics"
	"github.com/tripnest/vacations-api/internal/core/ports"
)

// LikeService records likes on behalf of the identity resolved by the
// middleware gate. Like and Unlike are idempotent.
type LikeService struct {
	likes     ports.LikeRepository
	vacations ports.VacationRepository
	log       zerolog.Logger
}

func NewLikeService(likes ports.LikeRepository, vacations ports.VacationRepository, log zerolog.Logger) *LikeService {
	return &LikeService{likes: likes, vacations: vacations, log: log}
}

func (s *LikeService) Like(ctx context.Context, userID, vacationID int64) error {
	if _, err := s.vacations.FindByID(ctx, vacationID); err != nil {
		return err
	}
	added, err := s.likes.Add(ctx, userID, vacationID)
	if err != nil {
		return fmt.Errorf("like: %w", err)
	}
	if added {
		metrics.LikesTotal.WithLabelValues("like").Inc()
		s.log.Debug().Int64("user_id", userID).Int64("vacation_id", vacationID).Msg("vacation liked")
	}
	return nil
}

func (s *LikeService) Unlike(ctx context.Context, userID, vacationID int64) error {
	removed, err := s.likes.Remove(ctx, userID, vacationID)
	if err != nil {
		return fmt.Errorf("unlike: %w", err)
	}
	if removed {
		metrics.LikesTotal.WithLabelValues("unlike").Inc()
	}
	return nil
}

func (s *LikeService) LikedByUser(ctx context.Context, userID int64) ([]int64, error) {
	ids, err := s.likes.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("liked by user: %w", err)
	}
	return ids, nil
}

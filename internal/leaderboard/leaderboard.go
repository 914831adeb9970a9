// internal/leaderboard/leaderboard.go
package leaderboard

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/fridaybar/backend/internal/apperr"
	"github.com/fridaybar/backend/internal/models"
	"github.com/fridaybar/backend/internal/store"
)

const defaultTopLimit = 25

// Service exposes the write-if-higher score board. A submission below the
// stored score is accepted but changes nothing.
type Service struct {
	store store.Store
	log   *logrus.Logger
}

// NewService returns a leaderboard service over the given store.
func NewService(s store.Store, log *logrus.Logger) *Service {
	return &Service{store: s, log: log}
}

// Submit records a score for uid if it beats the stored one. Reports whether
// the board changed.
func (s *Service) Submit(ctx context.Context, u models.User) (bool, error) {
	u.UID = strings.TrimSpace(u.UID)
	u.Username = strings.TrimSpace(u.Username)
	if u.UID == "" || u.Username == "" {
		return false, apperr.New(apperr.InvalidArgument, "uid and username are required")
	}
	if u.Score < 0 {
		return false, apperr.New(apperr.InvalidArgument, "score must be non-negative")
	}

	updated, err := s.store.UpsertScore(ctx, &u)
	if err != nil {
		return false, apperr.Wrap(apperr.Internal, "score write failed", err)
	}
	if updated {
		s.log.WithFields(logrus.Fields{
			"uid":   u.UID,
			"score": u.Score,
		}).Info("leaderboard updated")
	}
	return updated, nil
}

// Top returns the highest scores, best first.
func (s *Service) Top(ctx context.Context, limit int) ([]models.User, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultTopLimit
	}
	users, err := s.store.TopScores(ctx, limit)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "score read failed", err)
	}
	return users, nil
}

// internal/game/session.go
package game

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fridaybar/backend/internal/apperr"
	"github.com/fridaybar/backend/internal/models"
	"github.com/fridaybar/backend/internal/notify"
	"github.com/fridaybar/backend/internal/store"
)

// SessionManager drives the per-lobby game state machine:
// absent -> playing -> finished, finished terminal. Every mutation is
// leader-only, checked against the lobby's freshly read roster.
type SessionManager struct {
	store    store.Store
	catalog  *Catalog
	notifier notify.Notifier
	log      *logrus.Logger

	now func() time.Time
}

// NewSessionManager wires a session manager.
func NewSessionManager(s store.Store, c *Catalog, n notify.Notifier, log *logrus.Logger) *SessionManager {
	return &SessionManager{
		store:    s,
		catalog:  c,
		notifier: n,
		log:      log,
		now:      time.Now,
	}
}

// requireLeader checks that uid is the lobby's leader.
func requireLeader(l *models.Lobby, uid string) error {
	leader := l.Leader()
	if leader == nil || leader.UID != uid {
		return apperr.New(apperr.PermissionDenied, "only the lobby leader may do that")
	}
	return nil
}

// Start draws and resolves the session's challenge sequence and flips the
// lobby to playing, both writes in one atomic batch. The catalog is lazily
// seeded on first use. A lobby holds at most one session ever; starting again
// over a playing or finished one fails rather than re-drawing challenges.
func (m *SessionManager) Start(ctx context.Context, lobbyID uuid.UUID, playerUID, intensity string) error {
	l, err := m.store.GetLobby(ctx, lobbyID)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.New(apperr.NotFound, "lobby not found")
	}
	if err != nil {
		return apperr.Wrap(apperr.Internal, "lobby lookup failed", err)
	}
	if err := requireLeader(l, playerUID); err != nil {
		return err
	}
	if !models.ValidIntensity(intensity) {
		return apperr.Newf(apperr.InvalidArgument, "unknown intensity %q", intensity)
	}

	if err := m.catalog.EnsureSeeded(ctx); err != nil {
		return err
	}
	templates, err := m.catalog.Select(ctx, models.Intensity(intensity), len(l.Players))
	if err != nil {
		return err
	}

	resolved := make([]models.ResolvedChallenge, len(templates))
	for i, t := range templates {
		resolved[i] = Resolve(t, l.Players)
	}

	g := &models.GameState{
		Status:                models.StatusPlaying,
		CurrentChallengeIndex: 0,
		Challenges:            resolved,
		TotalChallenges:       models.TotalChallenges,
		Intensity:             models.Intensity(intensity),
		StartedAt:             m.now(),
	}
	if err := m.store.CreateGame(ctx, lobbyID, g); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.New(apperr.NotFound, "lobby not found")
		}
		if errors.Is(err, store.ErrGameExists) {
			return apperr.New(apperr.FailedPrecondition, "a game was already started for this lobby")
		}
		return apperr.Wrap(apperr.Internal, "could not start game", err)
	}

	m.log.WithFields(logrus.Fields{
		"lobby":     lobbyID,
		"intensity": intensity,
		"players":   len(l.Players),
	}).Info("game started")

	l.GameStatus = models.StatusPlaying
	m.notifier.Publish(lobbyID, &notify.Snapshot{Lobby: l, Game: g})
	return nil
}

// Next advances the challenge cursor. Reaching the final challenge flips the
// session (and the lobby mirror) to finished. Calls after completion are
// idempotent no-ops reporting finished=true.
func (m *SessionManager) Next(ctx context.Context, lobbyID uuid.UUID, playerUID string) (finished bool, err error) {
	var committedLobby *models.Lobby
	var changed bool
	g, err := m.store.UpdateGame(ctx, lobbyID, func(l *models.Lobby, g *models.GameState) (bool, error) {
		if err := requireLeader(l, playerUID); err != nil {
			return false, err
		}
		if g.Finished() {
			finished = true
			return false, nil
		}
		g.CurrentChallengeIndex++
		if g.CurrentChallengeIndex >= g.TotalChallenges {
			g.Status = models.StatusFinished
			l.GameStatus = models.StatusFinished
			finished = true
		}
		committedLobby = l
		changed = true
		return true, nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return false, apperr.New(apperr.NotFound, "lobby or game not found")
	}
	if err != nil {
		return false, err
	}

	if changed {
		m.log.WithFields(logrus.Fields{
			"lobby":    lobbyID,
			"index":    g.CurrentChallengeIndex,
			"finished": finished,
		}).Info("challenge advanced")
		m.notifier.Publish(lobbyID, &notify.Snapshot{Lobby: committedLobby, Game: g})
	}
	return finished, nil
}

// End force-finishes the session regardless of the cursor: the leader's
// explicit early-termination path, distinct from natural completion.
func (m *SessionManager) End(ctx context.Context, lobbyID uuid.UUID, playerUID string) error {
	var committedLobby *models.Lobby
	g, err := m.store.UpdateGame(ctx, lobbyID, func(l *models.Lobby, g *models.GameState) (bool, error) {
		if err := requireLeader(l, playerUID); err != nil {
			return false, err
		}
		g.Status = models.StatusFinished
		l.GameStatus = models.StatusFinished
		committedLobby = l
		return true, nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return apperr.New(apperr.NotFound, "lobby or game not found")
	}
	if err != nil {
		return err
	}

	m.log.WithField("lobby", lobbyID).Info("game ended early")
	m.notifier.Publish(lobbyID, &notify.Snapshot{Lobby: committedLobby, Game: g})
	return nil
}

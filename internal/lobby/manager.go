// internal/lobby/manager.go
package lobby

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fridaybar/backend/internal/apperr"
	"github.com/fridaybar/backend/internal/models"
	"github.com/fridaybar/backend/internal/notify"
	"github.com/fridaybar/backend/internal/store"
)

// Config tunes manager behavior that is environment-dependent.
type Config struct {
	// PlaceholderPlayers pads a new lobby with that many synthetic
	// non-leader players (Player1, Player2, ...) so a single tester can
	// exercise the client. Capped so the roster never exceeds MaxPlayers.
	PlaceholderPlayers int
}

// Manager owns lobby documents: creation, joining, leaving and the expiry
// sweep. Every read-modify-write of a roster runs inside a store transaction,
// so two simultaneous joins never observe the same pre-join roster.
type Manager struct {
	store    store.Store
	notifier notify.Notifier
	log      *logrus.Logger
	pins     *PinAllocator
	cfg      Config

	// PurgeAvatars, when set, removes externally stored avatar images for
	// a dissolved lobby. Failures are logged and swallowed; the sweep
	// never fails because an image was left behind.
	PurgeAvatars func(ctx context.Context, lobbyID uuid.UUID) error

	now func() time.Time
}

// NewManager wires a lobby manager.
func NewManager(s store.Store, n notify.Notifier, log *logrus.Logger, cfg Config) *Manager {
	return &Manager{
		store:    s,
		notifier: n,
		log:      log,
		pins:     NewPinAllocator(s),
		cfg:      cfg,
		now:      time.Now,
	}
}

// CreateResult is what the creator needs to hand the PIN to friends and to
// prove leadership on later calls.
type CreateResult struct {
	LobbyID uuid.UUID `json:"lobbyId"`
	GamePin int       `json:"gamePin"`
	UID     string    `json:"uid"`
}

// Create allocates a PIN, seeds the creator as sole leader and persists the
// lobby. The PIN existence check and the insert race against concurrent
// creates; the store's uniqueness guarantee resolves the loser, which simply
// draws a new PIN.
func (m *Manager) Create(ctx context.Context, creatorName, avatarURL string) (*CreateResult, error) {
	creatorName = strings.TrimSpace(creatorName)
	if creatorName == "" {
		return nil, apperr.New(apperr.InvalidArgument, "creatorName is required")
	}

	now := m.now()
	l := &models.Lobby{
		ID:         uuid.New(),
		CreatedAt:  now,
		ExpiresAt:  now.Add(models.LobbyTTL),
		GameStatus: models.StatusWaiting,
		Players: []models.Player{{
			Name:      creatorName,
			UID:       uuid.NewString(),
			IsLeader:  true,
			AvatarURL: avatarURL,
		}},
	}
	m.fillPlaceholders(l)

	for {
		pin, err := m.pins.Allocate(ctx)
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, "could not allocate pin", err)
		}
		l.Pin = pin
		err = m.store.CreateLobby(ctx, l)
		if errors.Is(err, store.ErrPinTaken) {
			continue
		}
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, "could not create lobby", err)
		}
		break
	}

	m.log.WithFields(logrus.Fields{
		"lobby":   l.ID,
		"pin":     l.Pin,
		"players": len(l.Players),
	}).Info("lobby created")

	m.notifier.Publish(l.ID, &notify.Snapshot{Lobby: l})
	return &CreateResult{LobbyID: l.ID, GamePin: l.Pin, UID: l.Players[0].UID}, nil
}

// fillPlaceholders pads the roster with synthetic players up to the
// configured count, never past capacity and never colliding with the
// creator's name.
func (m *Manager) fillPlaceholders(l *models.Lobby) {
	for i := 1; i <= m.cfg.PlaceholderPlayers && len(l.Players) < models.MaxPlayers; i++ {
		l.Players = append(l.Players, models.Player{
			Name: uniqueName(l, fmt.Sprintf("Player%d", i)),
			UID:  uuid.NewString(),
		})
	}
}

// JoinResult returns the post-join roster; the caller persists UID locally to
// assert its identity on later calls.
type JoinResult struct {
	LobbyID uuid.UUID       `json:"lobbyId"`
	GamePin int             `json:"gamePin"`
	Players []models.Player `json:"players"`
	UID     string          `json:"uid"`
}

// Join adds a player to the lobby holding pin. Expiry, capacity and name
// de-duplication are all enforced against the freshly re-read roster inside
// one transaction. An expired lobby is deleted on the spot and the join fails
// with permission-denied; that is the sole expiry-enforcement path at join
// time (the sweep is a courtesy).
func (m *Manager) Join(ctx context.Context, pin int, playerName, avatarURL string) (*JoinResult, error) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return nil, apperr.New(apperr.InvalidArgument, "playerName is required")
	}
	if pin < 100000 || pin > 999999 {
		return nil, apperr.New(apperr.InvalidArgument, "pin must be a 6-digit number")
	}

	found, err := m.store.FindLobbyByPin(ctx, pin)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.New(apperr.NotFound, "no lobby with that pin")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "lobby lookup failed", err)
	}

	var joined models.Player
	committed, err := m.store.UpdateLobby(ctx, found.ID, func(l *models.Lobby) (store.TxOutcome, error) {
		if l.Expired(m.now()) {
			return store.TxDelete, apperr.New(apperr.PermissionDenied, "Lobby has expired")
		}
		if len(l.Players) >= models.MaxPlayers {
			return store.TxNone, apperr.New(apperr.ResourceExhausted, "lobby is full")
		}
		joined = models.Player{
			Name:      uniqueName(l, playerName),
			UID:       uuid.NewString(),
			AvatarURL: avatarURL,
		}
		l.Players = append(l.Players, joined)
		return store.TxSave, nil
	})
	if err != nil {
		if apperr.IsKind(err, apperr.PermissionDenied) {
			m.log.WithField("lobby", found.ID).Info("join hit expired lobby, deleted")
			m.notifier.Publish(found.ID, &notify.Snapshot{Deleted: true})
		}
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "no lobby with that pin")
		}
		return nil, err
	}

	m.log.WithFields(logrus.Fields{
		"lobby":  committed.ID,
		"player": joined.Name,
		"count":  len(committed.Players),
	}).Info("player joined")

	m.notifier.Publish(committed.ID, &notify.Snapshot{Lobby: committed})
	return &JoinResult{
		LobbyID: committed.ID,
		GamePin: committed.Pin,
		Players: committed.Players,
		UID:     joined.UID,
	}, nil
}

// uniqueName suffixes base with (1), (2), ... until it collides with no
// current roster entry.
func uniqueName(l *models.Lobby, base string) string {
	if !l.HasName(base) {
		return base
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s(%d)", base, n)
		if !l.HasName(candidate) {
			return candidate
		}
	}
}

// LeaveResult reports what leaving did to the lobby.
type LeaveResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Leave removes the player from the roster. When the leader leaves, the whole
// lobby is dissolved; there is deliberately no leader handoff.
func (m *Manager) Leave(ctx context.Context, lobbyID uuid.UUID, playerUID string) (*LeaveResult, error) {
	if playerUID == "" {
		return nil, apperr.New(apperr.InvalidArgument, "playerUid is required")
	}

	var wasLeader bool
	committed, err := m.store.UpdateLobby(ctx, lobbyID, func(l *models.Lobby) (store.TxOutcome, error) {
		idx := l.FindPlayer(playerUID)
		if idx < 0 {
			return store.TxNone, apperr.New(apperr.NotFound, "player not in lobby")
		}
		if l.Players[idx].IsLeader {
			wasLeader = true
			return store.TxDelete, nil
		}
		l.Players = append(l.Players[:idx], l.Players[idx+1:]...)
		return store.TxSave, nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.New(apperr.NotFound, "lobby not found")
	}
	if err != nil {
		return nil, err
	}

	if wasLeader {
		m.log.WithField("lobby", lobbyID).Info("leader left, lobby dissolved")
		m.notifier.Publish(lobbyID, &notify.Snapshot{Deleted: true})
		return &LeaveResult{Success: true, Message: "lobby deleted"}, nil
	}

	m.log.WithFields(logrus.Fields{
		"lobby": lobbyID,
		"count": len(committed.Players),
	}).Info("player left")
	m.notifier.Publish(lobbyID, &notify.Snapshot{Lobby: committed})
	return &LeaveResult{Success: true, Message: "left lobby"}, nil
}

// CleanupExpired deletes every lobby past its expiry and best-effort purges
// its stored avatars. Returns how many lobbies were removed.
func (m *Manager) CleanupExpired(ctx context.Context) (int, error) {
	expired, err := m.store.ExpiredLobbies(ctx, m.now())
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, l := range expired {
		if err := m.store.DeleteLobby(ctx, l.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue // someone else got there first
			}
			return removed, err
		}
		removed++
		m.notifier.Publish(l.ID, &notify.Snapshot{Deleted: true})
		if m.PurgeAvatars != nil {
			if err := m.PurgeAvatars(ctx, l.ID); err != nil {
				m.log.WithError(err).WithField("lobby", l.ID).Warn("avatar purge failed")
			}
		}
	}
	if removed > 0 {
		m.log.WithField("count", removed).Info("expired lobbies cleaned up")
	}
	return removed, nil
}

// RunCleanup runs CleanupExpired on a fixed interval until ctx is cancelled.
func (m *Manager) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := m.CleanupExpired(ctx); err != nil {
				m.log.WithError(err).Warn("cleanup sweep failed")
			}
		}
	}
}

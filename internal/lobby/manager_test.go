// internal/lobby/manager_test.go
package lobby

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fridaybar/backend/internal/apperr"
	"github.com/fridaybar/backend/internal/models"
	"github.com/fridaybar/backend/internal/notify"
	"github.com/fridaybar/backend/internal/store"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestManager(cfg Config) (*Manager, *store.Memory) {
	st := store.NewMemory()
	return NewManager(st, notify.NewHub(), testLogger(), cfg), st
}

func TestCreateFillsPlaceholders(t *testing.T) {
	m, st := newTestManager(Config{PlaceholderPlayers: 7})
	ctx := context.Background()

	res, err := m.Create(ctx, "Ann", "")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.GamePin, 100000)
	assert.LessOrEqual(t, res.GamePin, 999999)

	l, err := st.GetLobby(ctx, res.LobbyID)
	require.NoError(t, err)
	assert.Len(t, l.Players, 8)

	leaders := 0
	for _, p := range l.Players {
		if p.IsLeader {
			leaders++
			assert.Equal(t, "Ann", p.Name)
			assert.Equal(t, res.UID, p.UID)
		}
	}
	assert.Equal(t, 1, leaders)
	assert.Equal(t, "Player1", l.Players[1].Name)
}

func TestCreateRejectsEmptyName(t *testing.T) {
	m, _ := newTestManager(Config{})
	_, err := m.Create(context.Background(), "   ", "")
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
}

func TestJoinSuffixesDuplicateNames(t *testing.T) {
	m, _ := newTestManager(Config{})
	ctx := context.Background()

	created, err := m.Create(ctx, "Ann", "")
	require.NoError(t, err)

	first, err := m.Join(ctx, created.GamePin, "Ann", "")
	require.NoError(t, err)
	assert.Equal(t, "Ann(1)", first.Players[len(first.Players)-1].Name)

	second, err := m.Join(ctx, created.GamePin, "Ann", "")
	require.NoError(t, err)
	assert.Equal(t, "Ann(2)", second.Players[len(second.Players)-1].Name)
}

func TestJoinRejectsWhenFull(t *testing.T) {
	m, st := newTestManager(Config{})
	ctx := context.Background()

	created, err := m.Create(ctx, "Ann", "")
	require.NoError(t, err)
	for i := 0; i < models.MaxPlayers-1; i++ {
		_, err := m.Join(ctx, created.GamePin, "Bob", "")
		require.NoError(t, err)
	}

	_, err = m.Join(ctx, created.GamePin, "Late", "")
	require.Error(t, err)
	assert.Equal(t, apperr.ResourceExhausted, apperr.KindOf(err))

	l, err := st.GetLobby(ctx, created.LobbyID)
	require.NoError(t, err)
	assert.Len(t, l.Players, models.MaxPlayers)
	assert.False(t, l.HasName("Late"))
}

func TestJoinExpiredLobbyDeletesIt(t *testing.T) {
	m, st := newTestManager(Config{})
	ctx := context.Background()

	created, err := m.Create(ctx, "Ann", "")
	require.NoError(t, err)

	m.now = func() time.Time { return time.Now().Add(models.LobbyTTL + time.Minute) }

	_, err = m.Join(ctx, created.GamePin, "Bob", "")
	require.Error(t, err)
	assert.Equal(t, apperr.PermissionDenied, apperr.KindOf(err))

	_, err = st.FindLobbyByPin(ctx, created.GamePin)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestJoinUnknownPin(t *testing.T) {
	m, _ := newTestManager(Config{})
	_, err := m.Join(context.Background(), 123456, "Bob", "")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestJoinRejectsBadArguments(t *testing.T) {
	m, _ := newTestManager(Config{})
	ctx := context.Background()

	_, err := m.Join(ctx, 123456, "", "")
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))

	_, err = m.Join(ctx, 42, "Bob", "")
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
}

func TestLeaveAsLeaderDissolvesLobby(t *testing.T) {
	m, st := newTestManager(Config{})
	ctx := context.Background()

	created, err := m.Create(ctx, "Ann", "")
	require.NoError(t, err)
	_, err = m.Join(ctx, created.GamePin, "Bob", "")
	require.NoError(t, err)

	res, err := m.Leave(ctx, created.LobbyID, created.UID)
	require.NoError(t, err)
	assert.True(t, res.Success)

	_, err = st.GetLobby(ctx, created.LobbyID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestLeaveAsMemberKeepsLobby(t *testing.T) {
	m, st := newTestManager(Config{})
	ctx := context.Background()

	created, err := m.Create(ctx, "Ann", "")
	require.NoError(t, err)
	joined, err := m.Join(ctx, created.GamePin, "Bob", "")
	require.NoError(t, err)

	_, err = m.Leave(ctx, created.LobbyID, joined.UID)
	require.NoError(t, err)

	l, err := st.GetLobby(ctx, created.LobbyID)
	require.NoError(t, err)
	assert.Len(t, l.Players, 1)
	require.NotNil(t, l.Leader())
	assert.Equal(t, "Ann", l.Leader().Name)
}

func TestLeaveUnknownPlayer(t *testing.T) {
	m, _ := newTestManager(Config{})
	ctx := context.Background()

	created, err := m.Create(ctx, "Ann", "")
	require.NoError(t, err)

	_, err = m.Leave(ctx, created.LobbyID, uuid.NewString())
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

// Concurrent joins must never over-fill the roster or hand out colliding
// names; the store transaction serializes them.
func TestConcurrentJoins(t *testing.T) {
	m, st := newTestManager(Config{})
	ctx := context.Background()

	created, err := m.Create(ctx, "Ann", "")
	require.NoError(t, err)

	const attempts = 12
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = m.Join(ctx, created.GamePin, "Bob", "")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.Equal(t, apperr.ResourceExhausted, apperr.KindOf(err))
		}
	}
	assert.Equal(t, models.MaxPlayers-1, succeeded)

	l, err := st.GetLobby(ctx, created.LobbyID)
	require.NoError(t, err)
	assert.Len(t, l.Players, models.MaxPlayers)

	seen := map[string]bool{}
	for _, p := range l.Players {
		assert.False(t, seen[p.Name], "duplicate name %q", p.Name)
		seen[p.Name] = true
	}
}

func TestPinsUniqueAcrossLobbies(t *testing.T) {
	m, _ := newTestManager(Config{})
	ctx := context.Background()

	pins := map[int]bool{}
	for i := 0; i < 50; i++ {
		res, err := m.Create(ctx, "Ann", "")
		require.NoError(t, err)
		assert.False(t, pins[res.GamePin], "pin %d allocated twice", res.GamePin)
		pins[res.GamePin] = true
	}
}

func TestCleanupExpired(t *testing.T) {
	m, st := newTestManager(Config{})
	ctx := context.Background()

	past := time.Now().Add(-3 * time.Hour)
	m.now = func() time.Time { return past }
	stale, err := m.Create(ctx, "Old", "")
	require.NoError(t, err)

	m.now = time.Now
	fresh, err := m.Create(ctx, "New", "")
	require.NoError(t, err)

	var purged []uuid.UUID
	m.PurgeAvatars = func(ctx context.Context, lobbyID uuid.UUID) error {
		purged = append(purged, lobbyID)
		return nil
	}

	removed, err := m.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, []uuid.UUID{stale.LobbyID}, purged)

	_, err = st.GetLobby(ctx, stale.LobbyID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.GetLobby(ctx, fresh.LobbyID)
	assert.NoError(t, err)
}

func TestLeavePublishesSnapshots(t *testing.T) {
	st := store.NewMemory()
	hub := notify.NewHub()
	m := NewManager(st, hub, testLogger(), Config{})
	ctx := context.Background()

	created, err := m.Create(ctx, "Ann", "")
	require.NoError(t, err)

	var mu sync.Mutex
	var got []*notify.Snapshot
	unsub := hub.Subscribe(created.LobbyID, func(s *notify.Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, s)
	})
	defer unsub()

	joined, err := m.Join(ctx, created.GamePin, "Bob", "")
	require.NoError(t, err)
	_, err = m.Leave(ctx, created.LobbyID, joined.UID)
	require.NoError(t, err)
	_, err = m.Leave(ctx, created.LobbyID, created.UID)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 3)
	assert.Len(t, got[0].Lobby.Players, 2)
	assert.Len(t, got[1].Lobby.Players, 1)
	assert.True(t, got[2].Deleted)
}

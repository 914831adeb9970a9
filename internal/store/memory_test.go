// internal/store/memory_test.go
package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fridaybar/backend/internal/models"
)

func testLobby(pin int) *models.Lobby {
	now := time.Now()
	return &models.Lobby{
		ID:         uuid.New(),
		Pin:        pin,
		CreatedAt:  now,
		ExpiresAt:  now.Add(models.LobbyTTL),
		GameStatus: models.StatusWaiting,
		Players: []models.Player{
			{Name: "Ann", UID: uuid.NewString(), IsLeader: true},
		},
	}
}

func TestCreateLobbyEnforcesPinUniqueness(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.CreateLobby(ctx, testLobby(123456)))
	err := m.CreateLobby(ctx, testLobby(123456))
	assert.ErrorIs(t, err, ErrPinTaken)
	assert.NoError(t, m.CreateLobby(ctx, testLobby(654321)))
}

func TestUpdateLobbyAppliesOutcomeDespiteError(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	l := testLobby(111111)
	require.NoError(t, m.CreateLobby(ctx, l))

	sentinel := errors.New("expired")
	_, err := m.UpdateLobby(ctx, l.ID, func(l *models.Lobby) (TxOutcome, error) {
		return TxDelete, sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	// the delete must have been applied anyway
	_, err = m.GetLobby(ctx, l.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateLobbyDiscardsMutationOnTxNone(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	l := testLobby(222222)
	require.NoError(t, m.CreateLobby(ctx, l))

	_, err := m.UpdateLobby(ctx, l.ID, func(work *models.Lobby) (TxOutcome, error) {
		work.Players = nil
		return TxNone, errors.New("rejected")
	})
	require.Error(t, err)

	got, err := m.GetLobby(ctx, l.ID)
	require.NoError(t, err)
	assert.Len(t, got.Players, 1)
}

func TestSnapshotsDoNotAliasStoreState(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	l := testLobby(333333)
	require.NoError(t, m.CreateLobby(ctx, l))

	got, err := m.GetLobby(ctx, l.ID)
	require.NoError(t, err)
	got.Players[0].Name = "Mallory"

	again, err := m.GetLobby(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", again.Players[0].Name)
}

func TestDeleteLobbyRemovesGameState(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	l := testLobby(444444)
	require.NoError(t, m.CreateLobby(ctx, l))
	require.NoError(t, m.CreateGame(ctx, l.ID, &models.GameState{
		Status:          models.StatusPlaying,
		TotalChallenges: models.TotalChallenges,
	}))

	require.NoError(t, m.DeleteLobby(ctx, l.ID))
	_, err := m.GetGame(ctx, l.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateGameFlipsLobbyStatus(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	l := testLobby(555555)
	require.NoError(t, m.CreateLobby(ctx, l))

	require.NoError(t, m.CreateGame(ctx, l.ID, &models.GameState{
		Status:          models.StatusPlaying,
		TotalChallenges: models.TotalChallenges,
	}))

	got, err := m.GetLobby(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPlaying, got.GameStatus)
}

func TestCreateGameRefusesSecondWrite(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	l := testLobby(666666)
	require.NoError(t, m.CreateLobby(ctx, l))

	require.NoError(t, m.CreateGame(ctx, l.ID, &models.GameState{
		Status:          models.StatusPlaying,
		Intensity:       models.IntensityMild,
		TotalChallenges: models.TotalChallenges,
	}))

	err := m.CreateGame(ctx, l.ID, &models.GameState{
		Status:          models.StatusPlaying,
		Intensity:       models.IntensitySpicy,
		TotalChallenges: models.TotalChallenges,
	})
	assert.ErrorIs(t, err, ErrGameExists)

	g, err := m.GetGame(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IntensityMild, g.Intensity)
}

func TestUpsertScoreOnlyWritesHigher(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	updated, err := m.UpsertScore(ctx, &models.User{UID: "u1", Username: "Ann", Score: 10})
	require.NoError(t, err)
	assert.True(t, updated)

	updated, err = m.UpsertScore(ctx, &models.User{UID: "u1", Username: "Ann", Score: 5})
	require.NoError(t, err)
	assert.False(t, updated)

	u, err := m.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 10, u.Score)
}

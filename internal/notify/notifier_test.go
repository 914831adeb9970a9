// internal/notify/notifier_test.go
package notify

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/fridaybar/backend/internal/models"
)

func TestHubFansOutToSubscribers(t *testing.T) {
	h := NewHub()
	lobbyID := uuid.New()

	var a, b []*Snapshot
	unsubA := h.Subscribe(lobbyID, func(s *Snapshot) { a = append(a, s) })
	defer unsubA()
	unsubB := h.Subscribe(lobbyID, func(s *Snapshot) { b = append(b, s) })
	defer unsubB()

	snap := &Snapshot{Lobby: &models.Lobby{ID: lobbyID}}
	h.Publish(lobbyID, snap)

	assert.Len(t, a, 1)
	assert.Len(t, b, 1)
}

func TestHubScopesByLobby(t *testing.T) {
	h := NewHub()
	lobbyA, lobbyB := uuid.New(), uuid.New()

	var got []*Snapshot
	unsub := h.Subscribe(lobbyA, func(s *Snapshot) { got = append(got, s) })
	defer unsub()

	h.Publish(lobbyB, &Snapshot{Deleted: true})
	assert.Empty(t, got)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	h := NewHub()
	lobbyID := uuid.New()

	var got []*Snapshot
	unsub := h.Subscribe(lobbyID, func(s *Snapshot) { got = append(got, s) })

	h.Publish(lobbyID, &Snapshot{Deleted: true})
	unsub()
	h.Publish(lobbyID, &Snapshot{Deleted: true})

	assert.Len(t, got, 1)
}

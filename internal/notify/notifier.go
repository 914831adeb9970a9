// internal/notify/notifier.go
package notify

import (
	"sync"

	"github.com/google/uuid"

	"github.com/fridaybar/backend/internal/models"
)

// Snapshot is one full-document notification: the authoritative current state
// of a lobby (and, once a session is running, its game state) after a
// committed mutation. Consumers must treat every delivery as the whole truth,
// not a delta. Deleted marks the lobby as gone.
type Snapshot struct {
	Deleted bool              `json:"deleted,omitempty"`
	Lobby   *models.Lobby     `json:"lobby,omitempty"`
	Game    *models.GameState `json:"game,omitempty"`
	Origin  string            `json:"origin,omitempty"`
}

// Notifier pushes committed snapshots to whoever subscribed to a lobby.
type Notifier interface {
	Publish(lobbyID uuid.UUID, snap *Snapshot)
	// Subscribe registers fn for a lobby and returns an unsubscribe func.
	// fn must not block; slow consumers buffer on their own side.
	Subscribe(lobbyID uuid.UUID, fn func(*Snapshot)) (unsubscribe func())
}

// Hub is the in-process Notifier fanning snapshots out to local subscribers.
type Hub struct {
	mu   sync.Mutex
	next int
	subs map[uuid.UUID]map[int]func(*Snapshot)
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[uuid.UUID]map[int]func(*Snapshot))}
}

func (h *Hub) Publish(lobbyID uuid.UUID, snap *Snapshot) {
	h.mu.Lock()
	fns := make([]func(*Snapshot), 0, len(h.subs[lobbyID]))
	for _, fn := range h.subs[lobbyID] {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func (h *Hub) Subscribe(lobbyID uuid.UUID, fn func(*Snapshot)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[lobbyID] == nil {
		h.subs[lobbyID] = make(map[int]func(*Snapshot))
	}
	id := h.next
	h.next++
	h.subs[lobbyID][id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs[lobbyID], id)
		if len(h.subs[lobbyID]) == 0 {
			delete(h.subs, lobbyID)
		}
	}
}

// internal/handlers/lobby_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/fridaybar/backend/internal/middleware"
	"github.com/fridaybar/backend/internal/notify"
	"github.com/fridaybar/backend/internal/store"
)

// snapshot assembles the current full state for a lobby: the lobby document
// plus the game state when a session exists.
func (s *Server) snapshot(ctx context.Context, lobbyID uuid.UUID) (*notify.Snapshot, error) {
	l, err := s.Store.GetLobby(ctx, lobbyID)
	if err != nil {
		return nil, err
	}
	snap := &notify.Snapshot{Lobby: l}
	g, err := s.Store.GetGame(ctx, lobbyID)
	if err == nil {
		snap.Game = g
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	return snap, nil
}

// handleLobbyWS streams full-document snapshots for one lobby: once
// immediately on connect, then after every committed mutation, and a deleted
// marker when the lobby dissolves. Consumers treat each message as the
// authoritative current state, never a delta.
func (s *Server) handleLobbyWS(w http.ResponseWriter, r *http.Request) {
	remoteAddr := r.RemoteAddr
	idStr := strings.TrimPrefix(r.URL.Path, "/lobby/ws/")
	lobbyID, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, "invalid lobby_id", http.StatusBadRequest)
		return
	}

	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		Subprotocols:   []string{"lobby"},
		OriginPatterns: []string{"*"}, // Adjust in production
	})
	if err != nil {
		s.Logger.Warnf("websocket accept error: %v", err)
		return
	}
	defer c.Close(websocket.StatusInternalError, "handler finished")

	if c.Subprotocol() != "lobby" {
		c.Close(BadSubprotocolError, "client must speak the lobby subprotocol")
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Buffered so Publish never blocks on a slow client; overflow drops
	// intermediate snapshots, which is safe because every snapshot is the
	// whole state.
	out := make(chan *notify.Snapshot, 16)

	// Subscribe before the initial read so a mutation committing in between
	// is queued instead of lost. Anything queued ahead of the initial
	// snapshot is at most as fresh as the read, so delivering it first is
	// harmless.
	unsubscribe := s.Notifier.Subscribe(lobbyID, func(snap *notify.Snapshot) {
		select {
		case out <- snap:
		default:
			s.Logger.WithField("lobby", lobbyID).Warn("slow subscriber, snapshot dropped")
		}
	})
	defer unsubscribe()

	initial, err := s.snapshot(r.Context(), lobbyID)
	if errors.Is(err, store.ErrNotFound) {
		c.Close(InvalidLobbyIDError, "lobby does not exist")
		return
	}
	if err != nil {
		s.Logger.WithError(err).Warn("initial snapshot read failed")
		c.Close(websocket.StatusInternalError, "snapshot read failed")
		return
	}
	select {
	case out <- initial:
	default:
	}

	middleware.LogSubscribe(s.Logger, remoteAddr, lobbyID.String())

	go s.writePump(ctx, c, out, cancel)

	// Read loop: the stream is one-way, so inbound messages are discarded.
	// Reading still has to happen for close frames to be processed.
	var readErr error
	for {
		if _, _, readErr = c.Read(ctx); readErr != nil {
			break
		}
	}
	cancel()
	middleware.LogUnsubscribe(s.Logger, remoteAddr, lobbyID.String(), readErr)
}

// writePump drains the snapshot channel onto the socket. A deleted snapshot
// is the stream's natural end.
func (s *Server) writePump(ctx context.Context, c *websocket.Conn, out <-chan *notify.Snapshot, cancel context.CancelFunc) {
	for {
		select {
		case <-ctx.Done():
			return
		case snap := <-out:
			data, err := json.Marshal(snap)
			if err != nil {
				s.Logger.WithError(err).Warn("snapshot marshal failed")
				continue
			}
			if err := c.Write(ctx, websocket.MessageText, data); err != nil {
				cancel()
				return
			}
			if snap.Deleted {
				c.Close(LobbyDeletedClose, "lobby deleted")
				cancel()
				return
			}
		}
	}
}

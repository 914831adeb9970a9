// internal/handlers/lobby.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/fridaybar/backend/internal/apperr"
	"github.com/fridaybar/backend/internal/store"
)

type createLobbyRequest struct {
	CreatorName string `json:"creatorName"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

func (s *Server) handleCreateLobby(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req createLobbyRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	res, err := s.Lobbies.Create(r.Context(), req.CreatorName, req.AvatarURL)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type joinLobbyRequest struct {
	Pin        int    `json:"pin"`
	PlayerName string `json:"playerName"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
}

func (s *Server) handleJoinLobby(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req joinLobbyRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	res, err := s.Lobbies.Join(r.Context(), req.Pin, req.PlayerName, req.AvatarURL)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type leaveLobbyRequest struct {
	LobbyID   string `json:"lobbyId"`
	PlayerUID string `json:"playerUid"`
}

func (s *Server) handleLeaveLobby(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req leaveLobbyRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	lobbyID, err := uuid.Parse(req.LobbyID)
	if err != nil {
		s.writeError(w, apperr.New(apperr.InvalidArgument, "lobbyId is not a valid id"))
		return
	}
	res, err := s.Lobbies.Leave(r.Context(), lobbyID, req.PlayerUID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleGetLobby serves a one-shot snapshot of a lobby and, if running, its
// game state: what a fresh subscriber would receive first.
func (s *Server) handleGetLobby(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	idStr := strings.TrimPrefix(r.URL.Path, "/lobby/")
	lobbyID, err := uuid.Parse(idStr)
	if err != nil {
		s.writeError(w, apperr.New(apperr.InvalidArgument, "invalid lobby id"))
		return
	}

	snap, err := s.snapshot(r.Context(), lobbyID)
	if errors.Is(err, store.ErrNotFound) {
		s.writeError(w, apperr.New(apperr.NotFound, "lobby not found"))
		return
	}
	if err != nil {
		s.writeError(w, apperr.Wrap(apperr.Internal, "snapshot read failed", err))
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

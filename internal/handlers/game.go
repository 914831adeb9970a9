// internal/handlers/game.go
package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/fridaybar/backend/internal/apperr"
)

type startGameRequest struct {
	LobbyID   string `json:"lobbyId"`
	PlayerUID string `json:"playerUid"`
	Intensity string `json:"intensity"`
}

type gameTargetRequest struct {
	LobbyID   string `json:"lobbyId"`
	PlayerUID string `json:"playerUid"`
}

func parseLobbyID(id string) (uuid.UUID, error) {
	lobbyID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperr.New(apperr.InvalidArgument, "lobbyId is not a valid id")
	}
	return lobbyID, nil
}

func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req startGameRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	lobbyID, err := parseLobbyID(req.LobbyID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.Sessions.Start(r.Context(), lobbyID, req.PlayerUID, req.Intensity); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleNextChallenge(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req gameTargetRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	lobbyID, err := parseLobbyID(req.LobbyID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	finished, err := s.Sessions.Next(r.Context(), lobbyID, req.PlayerUID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{
		"success":  true,
		"finished": finished,
	})
}

func (s *Server) handleEndGame(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req gameTargetRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	lobbyID, err := parseLobbyID(req.LobbyID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.Sessions.End(r.Context(), lobbyID, req.PlayerUID); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleSeedChallenges(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	count, err := s.Catalog.Seed(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   count,
	})
}

// internal/handlers/score.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/fridaybar/backend/internal/models"
)

type submitScoreRequest struct {
	UID      string `json:"uid"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Study    string `json:"study,omitempty"`
	Score    int    `json:"score"`
}

func (s *Server) handleSubmitScore(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req submitScoreRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	updated, err := s.Scores.Submit(r.Context(), models.User{
		UID:      req.UID,
		Username: req.Username,
		Email:    req.Email,
		Study:    req.Study,
		Score:    req.Score,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{
		"success": true,
		"updated": updated,
	})
}

func (s *Server) handleTopScores(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	users, err := s.Scores.Top(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": users})
}

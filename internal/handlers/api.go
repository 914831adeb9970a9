// internal/handlers/api.go
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/fridaybar/backend/internal/apperr"
	"github.com/fridaybar/backend/internal/game"
	"github.com/fridaybar/backend/internal/leaderboard"
	"github.com/fridaybar/backend/internal/lobby"
	"github.com/fridaybar/backend/internal/middleware"
	"github.com/fridaybar/backend/internal/notify"
	"github.com/fridaybar/backend/internal/store"
)

// Server bundles the managers behind the RPC-style HTTP surface. Each
// endpoint is an independent stateless handler; all cross-request state lives
// in the store.
type Server struct {
	Lobbies  *lobby.Manager
	Sessions *game.SessionManager
	Catalog  *game.Catalog
	Scores   *leaderboard.Service
	Store    store.Store
	Notifier notify.Notifier
	Logger   *logrus.Logger
}

// NewServer wires the full handler set over one store and notifier.
func NewServer(st store.Store, n notify.Notifier, logger *logrus.Logger, cfg lobby.Config) *Server {
	catalog := game.NewCatalog(st, logger)
	return &Server{
		Lobbies:  lobby.NewManager(st, n, logger, cfg),
		Sessions: game.NewSessionManager(st, catalog, n, logger),
		Catalog:  catalog,
		Scores:   leaderboard.NewService(st, logger),
		Store:    st,
		Notifier: n,
		Logger:   logger,
	}
}

// Routes builds the HTTP mux with request logging on every endpoint.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	logmw := middleware.LogMiddleware(s.Logger)

	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, logmw(h))
	}

	handle("/lobby/create", s.handleCreateLobby)
	handle("/lobby/join", s.handleJoinLobby)
	handle("/lobby/leave", s.handleLeaveLobby)
	handle("/lobby/ws/", s.handleLobbyWS)
	handle("/lobby/", s.handleGetLobby)

	handle("/game/start", s.handleStartGame)
	handle("/game/next", s.handleNextChallenge)
	handle("/game/end", s.handleEndGame)

	handle("/challenges/seed", s.handleSeedChallenges)

	handle("/score/submit", s.handleSubmitScore)
	handle("/score/top", s.handleTopScores)

	mux.HandleFunc("/", s.handlePing)
	return mux
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeJSON parses the request body into v, rejecting unknown fields so
// malformed payloads fail at the boundary instead of deep in business logic.
func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.New(apperr.InvalidArgument, "request body is required")
		}
		return apperr.Wrap(apperr.InvalidArgument, "malformed request body", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps a categorized error to its HTTP status and a small JSON
// body carrying the kind and client-safe message.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	status := http.StatusInternalServerError
	switch kind {
	case apperr.InvalidArgument:
		status = http.StatusBadRequest
	case apperr.NotFound:
		status = http.StatusNotFound
	case apperr.PermissionDenied:
		status = http.StatusForbidden
	case apperr.ResourceExhausted:
		status = http.StatusConflict
	case apperr.FailedPrecondition:
		status = http.StatusPreconditionFailed
	}
	if status == http.StatusInternalServerError {
		s.Logger.WithError(err).Error("internal error")
	}
	writeJSON(w, status, map[string]string{
		"code":  string(kind),
		"error": apperr.Message(err),
	})
}

// requirePost bounces anything that isn't a POST.
func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// internal/handlers/lobby_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fridaybar/backend/internal/lobby"
	"github.com/fridaybar/backend/internal/notify"
	"github.com/fridaybar/backend/internal/store"
)

func newTestServer(cfg lobby.Config) *Server {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewServer(store.NewMemory(), notify.NewHub(), logger, cfg)
}

// doJSON posts body (or GETs when body is nil) against the server's routes
// and decodes the JSON response into a generic map.
func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded),
			"non-JSON response: %s", w.Body.String())
	}
	return w.Code, decoded
}

func TestCreateAndJoinFlow(t *testing.T) {
	srv := newTestServer(lobby.Config{})
	routes := srv.Routes()

	code, created := doJSON(t, routes, "POST", "/lobby/create",
		map[string]string{"creatorName": "Ann"})
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, created["lobbyId"])
	require.NotEmpty(t, created["uid"])
	pin := created["gamePin"].(float64)
	assert.GreaterOrEqual(t, pin, float64(100000))

	code, joined := doJSON(t, routes, "POST", "/lobby/join",
		map[string]interface{}{"pin": int(pin), "playerName": "Bob"})
	require.Equal(t, http.StatusOK, code)
	players := joined["players"].([]interface{})
	assert.Len(t, players, 2)
	assert.Equal(t, created["lobbyId"], joined["lobbyId"])
	assert.NotEqual(t, created["uid"], joined["uid"])
}

func TestCreateWithPlaceholders(t *testing.T) {
	srv := newTestServer(lobby.Config{PlaceholderPlayers: 7})
	routes := srv.Routes()

	code, created := doJSON(t, routes, "POST", "/lobby/create",
		map[string]string{"creatorName": "Ann"})
	require.Equal(t, http.StatusOK, code)

	code, snap := doJSON(t, routes, "GET", "/lobby/"+created["lobbyId"].(string), nil)
	require.Equal(t, http.StatusOK, code)
	l := snap["lobby"].(map[string]interface{})
	assert.Len(t, l["players"].([]interface{}), 8)
}

func TestCreateRejectsMissingName(t *testing.T) {
	srv := newTestServer(lobby.Config{})
	code, body := doJSON(t, srv.Routes(), "POST", "/lobby/create",
		map[string]string{"creatorName": ""})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid-argument", body["code"])
}

func TestCreateRejectsUnknownFields(t *testing.T) {
	srv := newTestServer(lobby.Config{})
	code, body := doJSON(t, srv.Routes(), "POST", "/lobby/create",
		map[string]string{"creatorName": "Ann", "isLeader": "true"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid-argument", body["code"])
}

func TestJoinUnknownPin(t *testing.T) {
	srv := newTestServer(lobby.Config{})
	code, body := doJSON(t, srv.Routes(), "POST", "/lobby/join",
		map[string]interface{}{"pin": 987654, "playerName": "Bob"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "not-found", body["code"])
}

func TestLeaveAsLeaderDeletesLobby(t *testing.T) {
	srv := newTestServer(lobby.Config{})
	routes := srv.Routes()

	code, created := doJSON(t, routes, "POST", "/lobby/create",
		map[string]string{"creatorName": "Ann"})
	require.Equal(t, http.StatusOK, code)

	code, left := doJSON(t, routes, "POST", "/lobby/leave", map[string]string{
		"lobbyId":   created["lobbyId"].(string),
		"playerUid": created["uid"].(string),
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, left["success"])

	code, _ = doJSON(t, routes, "GET", "/lobby/"+created["lobbyId"].(string), nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestScoreSubmitAndTop(t *testing.T) {
	srv := newTestServer(lobby.Config{})
	routes := srv.Routes()

	code, res := doJSON(t, routes, "POST", "/score/submit", map[string]interface{}{
		"uid": "u1", "username": "Ann", "study": "CS", "score": 80,
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, res["updated"])

	code, res = doJSON(t, routes, "POST", "/score/submit", map[string]interface{}{
		"uid": "u1", "username": "Ann", "study": "CS", "score": 10,
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, res["updated"])

	code, top := doJSON(t, routes, "GET", "/score/top?limit=5", nil)
	require.Equal(t, http.StatusOK, code)
	entries := top["entries"].([]interface{})
	require.Len(t, entries, 1)
	first := entries[0].(map[string]interface{})
	assert.Equal(t, float64(80), first["score"])
}

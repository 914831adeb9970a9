// internal/store/memory.go
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fridaybar/backend/internal/models"
)

// Memory is an in-memory Store. A single mutex serializes every transaction,
// which trivially gives the total-order guarantee the interface demands. All
// documents are deep-copied on the way in and out so callers never alias
// store-internal state.
//
// Used by tests and by dev mode when no DATABASE_URL is configured.
type Memory struct {
	mu         sync.Mutex
	lobbies    map[uuid.UUID]*models.Lobby
	games      map[uuid.UUID]*models.GameState
	challenges []models.ChallengeTemplate
	users      map[string]*models.User
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		lobbies: make(map[uuid.UUID]*models.Lobby),
		games:   make(map[uuid.UUID]*models.GameState),
		users:   make(map[string]*models.User),
	}
}

func (m *Memory) CreateLobby(ctx context.Context, l *models.Lobby) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.lobbies {
		if existing.Pin == l.Pin {
			return ErrPinTaken
		}
	}
	m.lobbies[l.ID] = l.Clone()
	return nil
}

func (m *Memory) GetLobby(ctx context.Context, id uuid.UUID) (*models.Lobby, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.lobbies[id]
	if !ok {
		return nil, ErrNotFound
	}
	return l.Clone(), nil
}

func (m *Memory) FindLobbyByPin(ctx context.Context, pin int) (*models.Lobby, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.lobbies {
		if l.Pin == pin {
			return l.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UpdateLobby(ctx context.Context, id uuid.UUID, fn LobbyTx) (*models.Lobby, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.lobbies[id]
	if !ok {
		return nil, ErrNotFound
	}
	work := stored.Clone()
	outcome, err := fn(work)
	switch outcome {
	case TxSave:
		m.lobbies[id] = work.Clone()
	case TxDelete:
		delete(m.lobbies, id)
		delete(m.games, id)
	}
	if err != nil {
		return nil, err
	}
	if outcome == TxDelete {
		return nil, nil
	}
	return work, nil
}

func (m *Memory) DeleteLobby(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.lobbies[id]; !ok {
		return ErrNotFound
	}
	delete(m.lobbies, id)
	delete(m.games, id)
	return nil
}

func (m *Memory) ExpiredLobbies(ctx context.Context, cutoff time.Time) ([]*models.Lobby, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Lobby
	for _, l := range m.lobbies {
		if l.ExpiresAt.Before(cutoff) {
			out = append(out, l.Clone())
		}
	}
	return out, nil
}

func (m *Memory) CreateGame(ctx context.Context, lobbyID uuid.UUID, g *models.GameState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.lobbies[lobbyID]
	if !ok {
		return ErrNotFound
	}
	if _, ok := m.games[lobbyID]; ok {
		return ErrGameExists
	}
	l.GameStatus = models.StatusPlaying
	m.games[lobbyID] = g.Clone()
	return nil
}

func (m *Memory) GetGame(ctx context.Context, lobbyID uuid.UUID) (*models.GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[lobbyID]
	if !ok {
		return nil, ErrNotFound
	}
	return g.Clone(), nil
}

func (m *Memory) UpdateGame(ctx context.Context, lobbyID uuid.UUID, fn GameTx) (*models.GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.lobbies[lobbyID]
	if !ok {
		return nil, ErrNotFound
	}
	g, ok := m.games[lobbyID]
	if !ok {
		return nil, ErrNotFound
	}
	workL, workG := l.Clone(), g.Clone()
	changed, err := fn(workL, workG)
	if err != nil {
		return nil, err
	}
	if changed {
		m.lobbies[lobbyID] = workL.Clone()
		m.games[lobbyID] = workG.Clone()
	}
	return workG, nil
}

func (m *Memory) CountChallenges(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.challenges), nil
}

func (m *Memory) SeedChallenges(ctx context.Context, templates []models.ChallengeTemplate) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.challenges = append(m.challenges, templates...)
	return len(templates), nil
}

func (m *Memory) ChallengesByIntensity(ctx context.Context, intensity models.Intensity) ([]models.ChallengeTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ChallengeTemplate
	for _, c := range m.challenges {
		if c.Intensity == intensity {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *Memory) GetUser(ctx context.Context, uid string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[uid]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *Memory) UpsertScore(ctx context.Context, u *models.User) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.users[u.UID]
	if ok && existing.Score >= u.Score {
		return false, nil
	}
	cp := *u
	m.users[u.UID] = &cp
	return true, nil
}

func (m *Memory) TopScores(ctx context.Context, limit int) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Username < out[j].Username
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

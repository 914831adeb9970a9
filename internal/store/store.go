// internal/store/store.go
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/fridaybar/backend/internal/models"
)

var (
	// ErrNotFound is returned when a referenced document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrPinTaken is returned by CreateLobby when another live lobby
	// already holds the requested PIN.
	ErrPinTaken = errors.New("pin already in use")
	// ErrGameExists is returned by CreateGame when the lobby already has a
	// game state. A session is written once; finished is terminal.
	ErrGameExists = errors.New("game already exists for lobby")
)

// TxOutcome tells the store what to do with the lobby document after a
// transactional closure returns.
type TxOutcome int

const (
	// TxNone leaves the document untouched.
	TxNone TxOutcome = iota
	// TxSave persists the (mutated) document.
	TxSave
	// TxDelete removes the document.
	TxDelete
)

// LobbyTx is a transactional read-modify-write closure over one lobby. The
// store re-reads the document fresh, applies fn under exclusion, then applies
// the returned outcome. The outcome is applied even when err is non-nil; this
// lets a join against an expired lobby delete the document while the call
// itself still fails.
type LobbyTx func(l *models.Lobby) (TxOutcome, error)

// GameTx is a transactional closure over a lobby and its game state together.
// Both documents are re-read fresh and, when fn reports a change, both are
// committed as a single batch.
type GameTx func(l *models.Lobby, g *models.GameState) (changed bool, err error)

// Store is the document store the lobby and game managers run against. All
// serialization of concurrent access to one lobby's mutable state is the
// store's job: conflicting transactions against one lobby observe a total
// order.
type Store interface {
	// CreateLobby persists a new lobby, enforcing PIN uniqueness among
	// live lobbies atomically with the insert (ErrPinTaken on collision).
	CreateLobby(ctx context.Context, l *models.Lobby) error
	GetLobby(ctx context.Context, id uuid.UUID) (*models.Lobby, error)
	// FindLobbyByPin resolves a PIN to the live lobby holding it.
	FindLobbyByPin(ctx context.Context, pin int) (*models.Lobby, error)
	// UpdateLobby runs fn transactionally and returns the committed lobby
	// (nil if the outcome was TxDelete).
	UpdateLobby(ctx context.Context, id uuid.UUID, fn LobbyTx) (*models.Lobby, error)
	DeleteLobby(ctx context.Context, id uuid.UUID) error
	// ExpiredLobbies lists lobbies whose expiry is before cutoff.
	ExpiredLobbies(ctx context.Context, cutoff time.Time) ([]*models.Lobby, error)

	// CreateGame writes a fresh game state and flips the lobby's
	// gameStatus to playing as one atomic batch. ErrGameExists if the
	// lobby already has one; an existing state is never overwritten.
	CreateGame(ctx context.Context, lobbyID uuid.UUID, g *models.GameState) error
	GetGame(ctx context.Context, lobbyID uuid.UUID) (*models.GameState, error)
	// UpdateGame runs fn transactionally over the lobby and its game
	// state, committing both when fn reports a change. Returns the
	// committed game state.
	UpdateGame(ctx context.Context, lobbyID uuid.UUID, fn GameTx) (*models.GameState, error)

	CountChallenges(ctx context.Context) (int, error)
	// SeedChallenges bulk-writes catalog templates.
	SeedChallenges(ctx context.Context, templates []models.ChallengeTemplate) (int, error)
	ChallengesByIntensity(ctx context.Context, intensity models.Intensity) ([]models.ChallengeTemplate, error)

	GetUser(ctx context.Context, uid string) (*models.User, error)
	// UpsertScore writes u if no row exists or u.Score beats the stored
	// score; reports whether anything was written.
	UpsertScore(ctx context.Context, u *models.User) (bool, error)
	TopScores(ctx context.Context, limit int) ([]models.User, error)
}

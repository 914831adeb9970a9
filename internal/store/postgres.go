// internal/store/postgres.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fridaybar/backend/internal/models"
)

// Postgres is the production Store. Lobbies are rows with the roster as
// JSONB; a UNIQUE index on pin makes PIN allocation an atomic
// insert-if-absent rather than a check-then-act. Transactional closures run
// inside pgx.BeginTxFunc with SELECT ... FOR UPDATE supplying the fresh
// re-read the managers rely on.
type Postgres struct {
	pool *pgxpool.Pool
}

const pgUniqueViolation = "23505"

// NewPostgres connects a pool, verifies it with a ping, and ensures the
// schema exists.
func NewPostgres(ctx context.Context, connStr string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	p := &Postgres{pool: pool}
	if err := p.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return p, nil
}

// Close releases the connection pool.
func (p *Postgres) Close() { p.pool.Close() }

func (p *Postgres) migrate(ctx context.Context) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS lobbies (
			id UUID PRIMARY KEY,
			pin INT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			expires_at TIMESTAMPTZ NOT NULL,
			game_status TEXT NOT NULL DEFAULT 'waiting',
			players JSONB NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS lobbies_pin_key ON lobbies (pin)`,
		`CREATE TABLE IF NOT EXISTS game_states (
			lobby_id UUID PRIMARY KEY REFERENCES lobbies(id) ON DELETE CASCADE,
			state JSONB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS challenges (
			id UUID PRIMARY KEY,
			type TEXT NOT NULL,
			template TEXT NOT NULL,
			template_da TEXT NOT NULL,
			min_players INT NOT NULL,
			category TEXT NOT NULL,
			intensity TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			uid TEXT PRIMARY KEY,
			username TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			study TEXT NOT NULL DEFAULT '',
			score INT NOT NULL DEFAULT 0
		)`,
	}
	for _, q := range ddl {
		if _, err := p.pool.Exec(ctx, q); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func (p *Postgres) CreateLobby(ctx context.Context, l *models.Lobby) error {
	players, err := json.Marshal(l.Players)
	if err != nil {
		return err
	}
	status := l.GameStatus
	if status == "" {
		status = models.StatusWaiting
	}
	q := `INSERT INTO lobbies (id, pin, created_at, expires_at, game_status, players)
	      VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = p.pool.Exec(ctx, q, l.ID, l.Pin, l.CreatedAt, l.ExpiresAt, status, players)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrPinTaken
	}
	return err
}

func scanLobby(row pgx.Row) (*models.Lobby, error) {
	var l models.Lobby
	var players []byte
	err := row.Scan(&l.ID, &l.Pin, &l.CreatedAt, &l.ExpiresAt, &l.GameStatus, &players)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(players, &l.Players); err != nil {
		return nil, err
	}
	return &l, nil
}

const lobbyCols = `id, pin, created_at, expires_at, game_status, players`

func (p *Postgres) GetLobby(ctx context.Context, id uuid.UUID) (*models.Lobby, error) {
	q := `SELECT ` + lobbyCols + ` FROM lobbies WHERE id = $1`
	return scanLobby(p.pool.QueryRow(ctx, q, id))
}

func (p *Postgres) FindLobbyByPin(ctx context.Context, pin int) (*models.Lobby, error) {
	q := `SELECT ` + lobbyCols + ` FROM lobbies WHERE pin = $1 LIMIT 1`
	return scanLobby(p.pool.QueryRow(ctx, q, pin))
}

func (p *Postgres) UpdateLobby(ctx context.Context, id uuid.UUID, fn LobbyTx) (*models.Lobby, error) {
	var committed *models.Lobby
	// fnErr is propagated after the commit: the closure's outcome must be
	// applied even when the closure fails (an expired lobby is deleted
	// while the join itself still errors), so it cannot trigger a
	// rollback via BeginTxFunc.
	var fnErr error
	txErr := pgx.BeginTxFunc(ctx, p.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		q := `SELECT ` + lobbyCols + ` FROM lobbies WHERE id = $1 FOR UPDATE`
		l, err := scanLobby(tx.QueryRow(ctx, q, id))
		if err != nil {
			return err
		}
		var outcome TxOutcome
		outcome, fnErr = fn(l)
		switch outcome {
		case TxSave:
			players, err := json.Marshal(l.Players)
			if err != nil {
				return err
			}
			_, err = tx.Exec(ctx,
				`UPDATE lobbies SET game_status = $2, players = $3 WHERE id = $1`,
				id, l.GameStatus, players)
			if err != nil {
				return err
			}
			committed = l
		case TxDelete:
			if _, err := tx.Exec(ctx, `DELETE FROM lobbies WHERE id = $1`, id); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	if fnErr != nil {
		return nil, fnErr
	}
	return committed, nil
}

func (p *Postgres) DeleteLobby(ctx context.Context, id uuid.UUID) error {
	ct, err := p.pool.Exec(ctx, `DELETE FROM lobbies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) ExpiredLobbies(ctx context.Context, cutoff time.Time) ([]*models.Lobby, error) {
	q := `SELECT ` + lobbyCols + ` FROM lobbies WHERE expires_at < $1`
	rows, err := p.pool.Query(ctx, q, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Lobby
	for rows.Next() {
		l, err := scanLobby(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (p *Postgres) CreateGame(ctx context.Context, lobbyID uuid.UUID, g *models.GameState) error {
	state, err := json.Marshal(g)
	if err != nil {
		return err
	}
	return pgx.BeginTxFunc(ctx, p.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		ct, err := tx.Exec(ctx,
			`UPDATE lobbies SET game_status = $2 WHERE id = $1`,
			lobbyID, models.StatusPlaying)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			return ErrNotFound
		}
		gt, err := tx.Exec(ctx, `
			INSERT INTO game_states (lobby_id, state) VALUES ($1, $2)
			ON CONFLICT (lobby_id) DO NOTHING`,
			lobbyID, state)
		if err != nil {
			return err
		}
		if gt.RowsAffected() == 0 {
			return ErrGameExists
		}
		return nil
	})
}

func scanGame(row pgx.Row) (*models.GameState, error) {
	var raw []byte
	err := row.Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var g models.GameState
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (p *Postgres) GetGame(ctx context.Context, lobbyID uuid.UUID) (*models.GameState, error) {
	q := `SELECT state FROM game_states WHERE lobby_id = $1`
	return scanGame(p.pool.QueryRow(ctx, q, lobbyID))
}

func (p *Postgres) UpdateGame(ctx context.Context, lobbyID uuid.UUID, fn GameTx) (*models.GameState, error) {
	var committed *models.GameState
	txErr := pgx.BeginTxFunc(ctx, p.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		lq := `SELECT ` + lobbyCols + ` FROM lobbies WHERE id = $1 FOR UPDATE`
		l, err := scanLobby(tx.QueryRow(ctx, lq, lobbyID))
		if err != nil {
			return err
		}
		gq := `SELECT state FROM game_states WHERE lobby_id = $1 FOR UPDATE`
		g, err := scanGame(tx.QueryRow(ctx, gq, lobbyID))
		if err != nil {
			return err
		}
		changed, fnErr := fn(l, g)
		if fnErr != nil {
			return fnErr
		}
		if changed {
			state, err := json.Marshal(g)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx,
				`UPDATE lobbies SET game_status = $2 WHERE id = $1`,
				lobbyID, l.GameStatus); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx,
				`UPDATE game_states SET state = $2 WHERE lobby_id = $1`,
				lobbyID, state); err != nil {
				return err
			}
		}
		committed = g
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return committed, nil
}

func (p *Postgres) CountChallenges(ctx context.Context) (int, error) {
	var n int
	err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM challenges`).Scan(&n)
	return n, err
}

func (p *Postgres) SeedChallenges(ctx context.Context, templates []models.ChallengeTemplate) (int, error) {
	count := 0
	err := pgx.BeginTxFunc(ctx, p.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		q := `INSERT INTO challenges (id, type, template, template_da, min_players, category, intensity)
		      VALUES ($1, $2, $3, $4, $5, $6, $7)`
		for _, c := range templates {
			id := c.ID
			if id == "" {
				id = uuid.NewString()
			}
			if _, err := tx.Exec(ctx, q, id, c.Type, c.Template, c.TemplateDa,
				c.MinPlayers, c.Category, c.Intensity); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (p *Postgres) ChallengesByIntensity(ctx context.Context, intensity models.Intensity) ([]models.ChallengeTemplate, error) {
	q := `SELECT id, type, template, template_da, min_players, category, intensity
	      FROM challenges WHERE intensity = $1`
	rows, err := p.pool.Query(ctx, q, intensity)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ChallengeTemplate
	for rows.Next() {
		var c models.ChallengeTemplate
		if err := rows.Scan(&c.ID, &c.Type, &c.Template, &c.TemplateDa,
			&c.MinPlayers, &c.Category, &c.Intensity); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (p *Postgres) GetUser(ctx context.Context, uid string) (*models.User, error) {
	var u models.User
	q := `SELECT uid, username, email, study, score FROM users WHERE uid = $1`
	err := p.pool.QueryRow(ctx, q, uid).Scan(&u.UID, &u.Username, &u.Email, &u.Study, &u.Score)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (p *Postgres) UpsertScore(ctx context.Context, u *models.User) (bool, error) {
	q := `
		INSERT INTO users (uid, username, email, study, score)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (uid) DO UPDATE
		SET username = EXCLUDED.username, email = EXCLUDED.email,
		    study = EXCLUDED.study, score = EXCLUDED.score
		WHERE users.score < EXCLUDED.score`
	ct, err := p.pool.Exec(ctx, q, u.UID, u.Username, u.Email, u.Study, u.Score)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

func (p *Postgres) TopScores(ctx context.Context, limit int) ([]models.User, error) {
	q := `SELECT uid, username, email, study, score FROM users
	      ORDER BY score DESC, username ASC LIMIT $1`
	rows, err := p.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.UID, &u.Username, &u.Email, &u.Study, &u.Score); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

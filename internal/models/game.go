// internal/models/game.go
package models

import "time"

// TotalChallenges is the fixed number of challenges drawn for every session.
const TotalChallenges = 20

// GameState is the per-lobby record of one playthrough: the ordered challenge
// sequence drawn once at start, and the progress cursor. It is mutated only
// by the session manager and dies with its lobby.
type GameState struct {
	Status                GameStatus          `json:"status"`
	CurrentChallengeIndex int                 `json:"currentChallengeIndex"`
	Challenges            []ResolvedChallenge `json:"challenges"`
	TotalChallenges       int                 `json:"totalChallenges"`
	Intensity             Intensity           `json:"intensity"`
	StartedAt             time.Time           `json:"startedAt"`
}

// Finished reports whether the session has reached its terminal state.
func (g *GameState) Finished() bool {
	return g.Status == StatusFinished
}

// Clone returns a deep copy of the game state.
func (g *GameState) Clone() *GameState {
	if g == nil {
		return nil
	}
	cp := *g
	cp.Challenges = make([]ResolvedChallenge, len(g.Challenges))
	copy(cp.Challenges, g.Challenges)
	return &cp
}

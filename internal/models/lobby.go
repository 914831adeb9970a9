// internal/models/lobby.go
package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MaxPlayers caps the roster size; joins at this size are rejected.
	MaxPlayers = 8
	// LobbyTTL is how long a lobby lives after creation.
	LobbyTTL = 2 * time.Hour
)

// GameStatus mirrors the lobby's top-level game phase. An absent/empty value
// is equivalent to waiting.
type GameStatus string

const (
	StatusWaiting  GameStatus = "waiting"
	StatusPlaying  GameStatus = "playing"
	StatusFinished GameStatus = "finished"
)

// Player is one roster entry. UID is a per-lobby membership identifier minted
// at create/join time, not a global account id; it is the caller's capability
// for leader-only operations and for finding itself in the roster.
type Player struct {
	Name      string `json:"name"`
	UID       string `json:"uid"`
	IsLeader  bool   `json:"isLeader"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Lobby is one waiting room, identified to joining players by a 6-digit PIN.
// Exactly one player has IsLeader set (the creator) for as long as the lobby
// exists; there is no leader handoff.
type Lobby struct {
	ID         uuid.UUID  `json:"lobbyId"`
	Pin        int        `json:"gamePin"`
	CreatedAt  time.Time  `json:"createdAt"`
	ExpiresAt  time.Time  `json:"expiresAt"`
	GameStatus GameStatus `json:"gameStatus,omitempty"`
	Players    []Player   `json:"players"`
}

// Leader returns the roster entry with IsLeader set, or nil.
func (l *Lobby) Leader() *Player {
	for i := range l.Players {
		if l.Players[i].IsLeader {
			return &l.Players[i]
		}
	}
	return nil
}

// FindPlayer returns the roster index of the player with the given uid, or -1.
func (l *Lobby) FindPlayer(uid string) int {
	for i := range l.Players {
		if l.Players[i].UID == uid {
			return i
		}
	}
	return -1
}

// HasName reports whether any roster entry has exactly the given name.
func (l *Lobby) HasName(name string) bool {
	for i := range l.Players {
		if l.Players[i].Name == name {
			return true
		}
	}
	return false
}

// Expired reports whether the lobby is logically dead at the given time.
func (l *Lobby) Expired(now time.Time) bool {
	return now.After(l.ExpiresAt)
}

// Clone returns a deep copy, so stores can hand out snapshots without
// aliasing their internal state.
func (l *Lobby) Clone() *Lobby {
	if l == nil {
		return nil
	}
	cp := *l
	cp.Players = make([]Player, len(l.Players))
	copy(cp.Players, l.Players)
	return &cp
}

// internal/models/user.go
package models

// User is one leaderboard row. Score only ever moves upward: a submission
// lower than the stored score is ignored.
type User struct {
	UID      string `json:"uid"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Study    string `json:"study,omitempty"`
	Score    int    `json:"score"`
}

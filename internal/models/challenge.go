// internal/models/challenge.go
package models

// Intensity is the difficulty/boldness tier controlling which challenge
// templates are eligible for a session.
type Intensity string

const (
	IntensityMild   Intensity = "mild"
	IntensityMedium Intensity = "medium"
	IntensitySpicy  Intensity = "spicy"
)

// ValidIntensity reports whether s names a known tier.
func ValidIntensity(s string) bool {
	switch Intensity(s) {
	case IntensityMild, IntensityMedium, IntensitySpicy:
		return true
	}
	return false
}

// ChallengeType drives client-side presentation of a challenge.
type ChallengeType string

const (
	ChallengeGeneral ChallengeType = "general"
	ChallengePlayer  ChallengeType = "player"
	ChallengeVersus  ChallengeType = "versus"
	ChallengeGroup   ChallengeType = "group"
)

// ChallengeTemplate is one catalog entry. Template and TemplateDa carry the
// English and Danish variants of the same prompt, with {player}/{player1..3}
// placeholder tokens. Templates are immutable once seeded.
type ChallengeTemplate struct {
	ID         string        `json:"id"`
	Type       ChallengeType `json:"type"`
	Template   string        `json:"template"`
	TemplateDa string        `json:"templateDa"`
	MinPlayers int           `json:"minPlayers"`
	Category   string        `json:"category"`
	Intensity  Intensity     `json:"intensity"`
}

// ResolvedChallenge is a template with its placeholders substituted for an
// actual roster. It only exists embedded in a GameState's challenge list.
type ResolvedChallenge struct {
	Text     string        `json:"text"`
	TextDa   string        `json:"textDa"`
	Type     ChallengeType `json:"type"`
	Category string        `json:"category"`
}

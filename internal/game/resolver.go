// internal/game/resolver.go
package game

import (
	"math/rand/v2"
	"strings"

	"github.com/fridaybar/backend/internal/models"
)

// fillers stand in for placeholder slots the roster cannot fill.
var fillers = [3]string{"Someone", "Someone else", "A third person"}

// Resolve substitutes the template's player placeholders from a fresh shuffle
// of the roster: the first shuffled name fills {player} and {player1}, the
// next two fill {player2} and {player3}. The shuffle happens once per
// challenge and is shared by both locales, so the English and Danish text of
// one challenge always name the same players.
func Resolve(t models.ChallengeTemplate, players []models.Player) models.ResolvedChallenge {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	rand.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})

	pick := func(slot int) string {
		if slot < len(names) {
			return names[slot]
		}
		return fillers[slot]
	}

	r := strings.NewReplacer(
		"{player}", pick(0),
		"{player1}", pick(0),
		"{player2}", pick(1),
		"{player3}", pick(2),
	)

	return models.ResolvedChallenge{
		Text:     r.Replace(t.Template),
		TextDa:   r.Replace(t.TemplateDa),
		Type:     t.Type,
		Category: t.Category,
	}
}

// internal/game/resolver_test.go
package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fridaybar/backend/internal/models"
)

func roster(names ...string) []models.Player {
	players := make([]models.Player, len(names))
	for i, n := range names {
		players[i] = models.Player{Name: n, UID: n}
	}
	return players
}

func TestResolveSubstitutesDistinctPlayers(t *testing.T) {
	tpl := models.ChallengeTemplate{
		Type:       models.ChallengeVersus,
		Category:   "drinking",
		Template:   "{player1} challenges {player2}",
		TemplateDa: "{player1} udfordrer {player2}",
	}

	res := Resolve(tpl, roster("Ann", "Bob"))
	assert.NotContains(t, res.Text, "{player")
	assert.Contains(t, res.Text, "Ann")
	assert.Contains(t, res.Text, "Bob")
	assert.Equal(t, tpl.Type, res.Type)
	assert.Equal(t, tpl.Category, res.Category)
}

func TestResolvePlayerAliasesFirstSlot(t *testing.T) {
	tpl := models.ChallengeTemplate{
		Template:   "{player} is also {player1}",
		TemplateDa: "{player} er også {player1}",
	}

	res := Resolve(tpl, roster("Ann", "Bob", "Cleo"))
	parts := strings.SplitN(res.Text, " is also ", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, parts[0], parts[1])
}

func TestResolveFallsBackToFillers(t *testing.T) {
	tpl := models.ChallengeTemplate{
		Template:   "{player1}, {player2} and {player3}",
		TemplateDa: "{player1}, {player2} og {player3}",
	}

	res := Resolve(tpl, roster("Ann"))
	assert.Equal(t, "Ann, Someone else and A third person", res.Text)
	assert.Equal(t, "Ann, Someone else og A third person", res.TextDa)
}

// A single shuffle feeds both locales, so the English and Danish text of one
// challenge always name the same player in the same slot.
func TestResolveLocalesAgreeOnPlayers(t *testing.T) {
	tpl := models.ChallengeTemplate{
		Template:   "{player1} drinks",
		TemplateDa: "{player1} drikker",
	}
	players := roster("Ann", "Bob", "Cleo", "Dan", "Eve")

	for i := 0; i < 50; i++ {
		res := Resolve(tpl, players)
		en := strings.TrimSuffix(res.Text, " drinks")
		da := strings.TrimSuffix(res.TextDa, " drikker")
		assert.Equal(t, en, da)
	}
}

func TestResolveLeavesPlainTemplatesAlone(t *testing.T) {
	tpl := models.ChallengeTemplate{
		Type:       models.ChallengeGeneral,
		Template:   "Everyone takes a sip!",
		TemplateDa: "Alle tager en tår!",
	}

	res := Resolve(tpl, roster("Ann", "Bob"))
	assert.Equal(t, "Everyone takes a sip!", res.Text)
	assert.Equal(t, "Alle tager en tår!", res.TextDa)
}

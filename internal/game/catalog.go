// internal/game/catalog.go
package game

import (
	"context"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fridaybar/backend/internal/apperr"
	"github.com/fridaybar/backend/internal/models"
	"github.com/fridaybar/backend/internal/store"
)

// Catalog is the read-filtered view over the seeded challenge templates.
// Seeding is idempotent: a non-empty catalog is never touched again.
type Catalog struct {
	store store.Store
	log   *logrus.Logger
}

// NewCatalog returns a catalog over the given store.
func NewCatalog(s store.Store, log *logrus.Logger) *Catalog {
	return &Catalog{store: s, log: log}
}

// Seed writes the full template set unless the catalog already has entries,
// in which case it reports the existing count untouched.
func (c *Catalog) Seed(ctx context.Context) (int, error) {
	existing, err := c.store.CountChallenges(ctx)
	if err != nil {
		return 0, apperr.Wrap(apperr.Internal, "catalog count failed", err)
	}
	if existing > 0 {
		return existing, nil
	}

	templates := make([]models.ChallengeTemplate, len(defaultTemplates))
	copy(templates, defaultTemplates)
	for i := range templates {
		templates[i].ID = uuid.NewString()
	}
	n, err := c.store.SeedChallenges(ctx, templates)
	if err != nil {
		return 0, apperr.Wrap(apperr.Internal, "catalog seed failed", err)
	}
	c.log.WithField("count", n).Info("challenge catalog seeded")
	return n, nil
}

// EnsureSeeded lazily bootstraps the catalog on first use.
func (c *Catalog) EnsureSeeded(ctx context.Context) error {
	_, err := c.Seed(ctx)
	return err
}

// Select draws models.TotalChallenges templates matching the intensity
// exactly and minPlayers <= playerCount: a uniform Fisher-Yates permutation
// of the qualifying set, truncated. No template repeats within one draw.
func (c *Catalog) Select(ctx context.Context, intensity models.Intensity, playerCount int) ([]models.ChallengeTemplate, error) {
	candidates, err := c.store.ChallengesByIntensity(ctx, intensity)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "catalog read failed", err)
	}

	pool := candidates[:0:0]
	for _, t := range candidates {
		if t.MinPlayers <= playerCount {
			pool = append(pool, t)
		}
	}
	if len(pool) < models.TotalChallenges {
		return nil, apperr.Newf(apperr.FailedPrecondition,
			"not enough challenges for intensity %q with %d players (%d available, need %d)",
			intensity, playerCount, len(pool), models.TotalChallenges)
	}

	for i := len(pool) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:models.TotalChallenges], nil
}

// internal/lobby/pin.go
package lobby

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/fridaybar/backend/internal/store"
)

// PinAllocator hands out 6-digit PINs not held by any live lobby. The
// existence check here and the eventual lobby insert are not one transaction;
// the store's unique PIN index closes that race, and Create retries on
// ErrPinTaken. Collision probability is ~1/900000 per draw, so the loop all
// but always exits on the first attempt.
type PinAllocator struct {
	store store.Store
}

// NewPinAllocator returns an allocator backed by the given store.
func NewPinAllocator(s store.Store) *PinAllocator {
	return &PinAllocator{store: s}
}

// Allocate draws random PINs in [100000, 999999] until one is unused.
func (a *PinAllocator) Allocate(ctx context.Context) (int, error) {
	for {
		pin := 100000 + rand.IntN(900000)
		_, err := a.store.FindLobbyByPin(ctx, pin)
		if errors.Is(err, store.ErrNotFound) {
			return pin, nil
		}
		if err != nil {
			return 0, err
		}
		// pin taken, draw again
	}
}

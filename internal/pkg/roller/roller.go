// Package roller provides a seedable dice roller so encounter selection
// can be replayed from a fixed seed.
package roller

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/caverns/internal/errors"
)

// Seeded rolls dice from a seeded pseudo-random source
type Seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ dice.Roller = (*Seeded)(nil)

// NewSeeded creates a roller from the given seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

// Roll rolls a single die of the given size
func (r *Seeded) Roll(size int) (int, error) {
	if size < 1 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(size) + 1, nil
}

// RollN rolls count dice of the given size
func (r *Seeded) RollN(count, size int) ([]int, error) {
	if count < 1 {
		return nil, errors.InvalidArgumentf("dice count must be positive, got %d", count)
	}
	if size < 1 {
		return nil, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	results := make([]int, count)
	for i := range results {
		results[i] = r.rng.Intn(size) + 1
	}
	return results, nil
}

// NewSeed generates a high-entropy seed using crypto/rand
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, errors.Wrap(err, "read random seed")
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

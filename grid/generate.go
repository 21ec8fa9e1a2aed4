package grid

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

var (
	defaultRngOnce sync.Once
	defaultRng     *rand.Rand
)

// NewRand returns a random source for Generate.
// Seed 0 seeds from the clock; any other seed reproduces the same boards.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// processRand is shared by every caller that does not bring its own source
func processRand() *rand.Rand {
	defaultRngOnce.Do(func() {
		defaultRng = NewRand(0)
	})
	return defaultRng
}

// Generate builds an n x n grid where every cell is independently occupied with probability p.
// A nil rng uses the process-wide source. Empty or full boards are valid results.
func Generate(p float64, n int, rng *rand.Rand) (*Grid, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidProbability, p)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	if rng == nil {
		rng = processRand()
	}

	g := New(n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if rng.Float64() < p {
				g.occupied.Put(Cell{X: x, Y: y})
			}
		}
	}
	return g, nil
}

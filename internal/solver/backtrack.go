package solver

import (
	"math/rand"
	"time"

	"svw.info/sudoku-engine/internal/domain"
)

// Backtracking is a recursive depth-first solver. The random source drives
// candidate shuffling when a caller asks for a randomized solve; inject a
// seeded source for reproducible results. A Backtracking value is not safe
// for concurrent use because the source is shared between calls.
type Backtracking struct {
	rng *rand.Rand
}

// NewBacktracking returns a solver using rng for candidate shuffling.
// A nil rng falls back to a time-seeded source.
func NewBacktracking(rng *rand.Rand) *Backtracking {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Backtracking{rng: rng}
}

// findEmpty returns the first empty cell in row-major order.
func findEmpty(b *domain.Board) (int, int, bool) {
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if b.Cells[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// candidateOrder yields 1..9, permuted when randomize is set.
func (s *Backtracking) candidateOrder(randomize bool) [domain.Size]uint8 {
	var vals [domain.Size]uint8
	for i := range vals {
		vals[i] = uint8(i + 1)
	}
	if randomize {
		s.rng.Shuffle(len(vals), func(i, j int) {
			vals[i], vals[j] = vals[j], vals[i]
		})
	}
	return vals
}

// Package hint derives human-style deductions from a board without search.
// The engine is stateless: every call recomputes candidate sets from the
// current cell values and returns the first match in a fixed technique
// order, so an unchanged board always yields the same hint.
package hint

import (
	"math/bits"

	"svw.info/sudoku-engine/internal/domain"
)

// Engine finds the next easiest logical move. It never mutates the board,
// eliminations included; nothing is remembered between calls.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// NextHint tries, in order: Naked Single, Hidden Single, Locked Candidates
// (Pointing), Locked Candidates (Claiming). The second result is false
// when none of the techniques applies, signalling "try full search".
func (e *Engine) NextHint(b *domain.Board) (domain.Hint, bool) {
	if h, ok := findNakedSingle(b); ok {
		return h, true
	}
	if h, ok := findHiddenSingle(b); ok {
		return h, true
	}
	if h, ok := findPointing(b); ok {
		return h, true
	}
	if h, ok := findClaiming(b); ok {
		return h, true
	}
	return domain.Hint{}, false
}

// admits reports whether the empty cell (r, c) could legally hold v.
func admits(b *domain.Board, r, c int, v uint8) bool {
	return b.Cells[r][c] == 0 && b.IsValidPlacement(r, c, v)
}

// candidates returns the candidate set of (r, c) as a bitmask with bit v
// set for each value the cell admits. Filled cells have no candidates.
func candidates(b *domain.Board, r, c int) uint16 {
	if b.Cells[r][c] != 0 {
		return 0
	}
	var m uint16
	for v := uint8(1); v <= domain.Size; v++ {
		if b.IsValidPlacement(r, c, v) {
			m |= 1 << v
		}
	}
	return m
}

// soleCandidate extracts the value of a one-member candidate set.
func soleCandidate(m uint16) (uint8, bool) {
	if bits.OnesCount16(m) != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(m)), true
}

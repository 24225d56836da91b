package solver

import (
	"context"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// Solve fills b in place and reports whether a solution was found. The
// branch point is always the first empty cell in row-major order; an
// already-complete board returns true immediately. On false, cells tried
// during the search have been reset, leaving b as it came in.
func (s *Backtracking) Solve(ctx context.Context, b *domain.Board, randomize bool) (bool, ports.Stats) {
	start := time.Now()
	nodes := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(b)
		if !ok {
			return true
		}
		for _, v := range s.candidateOrder(randomize) {
			nodes++
			if b.IsValidPlacement(r, c, v) {
				b.Cells[r][c] = v
				if dfs() {
					return true
				}
				b.Cells[r][c] = 0
			}
		}
		return false
	}

	ok := dfs()
	return ok, ports.Stats{Nodes: nodes, Duration: time.Since(start)}
}

package solver

import (
	"context"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// CountSolutions exhaustively counts every completion of b. The board is
// mutated during the search and restored before returning. Cost is
// exponential in the number of empty cells; when only uniqueness matters,
// use CountSolutionsUpTo with limit 2.
func (s *Backtracking) CountSolutions(ctx context.Context, b *domain.Board) (int, ports.Stats) {
	return s.countUpTo(ctx, b, 0)
}

// CountSolutionsUpTo counts completions of b, stopping as soon as limit
// solutions have been found. A limit of 0 means no bound.
func (s *Backtracking) CountSolutionsUpTo(ctx context.Context, b *domain.Board, limit int) (int, ports.Stats) {
	return s.countUpTo(ctx, b, limit)
}

func (s *Backtracking) countUpTo(ctx context.Context, b *domain.Board, limit int) (int, ports.Stats) {
	start := time.Now()
	nodes := 0
	count := 0

	// dfs returns true to abandon the remaining search. Every tried cell
	// is reset on the way out, so b is unchanged after the call even when
	// the limit cuts the search short.
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return true
		}
		r, c, ok := findEmpty(b)
		if !ok {
			count++
			return limit > 0 && count >= limit
		}
		for v := uint8(1); v <= domain.Size; v++ {
			nodes++
			if b.IsValidPlacement(r, c, v) {
				b.Cells[r][c] = v
				stop := dfs()
				b.Cells[r][c] = 0
				if stop {
					return true
				}
			}
		}
		return false
	}

	_ = dfs()
	return count, ports.Stats{Nodes: nodes, Duration: time.Since(start)}
}

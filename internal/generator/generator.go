package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// Unique carves puzzles out of a freshly solved grid, keeping exactly one
// solution at every step. The random source orders both the initial solve
// and the carving; inject a seeded source for reproducible puzzles.
type Unique struct {
	solver ports.Solver
	rng    *rand.Rand
}

// NewUnique wires a generator around the given solver.
func NewUnique(s ports.Solver, rng *rand.Rand) *Unique {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Unique{solver: s, rng: rng}
}

// Generate builds a puzzle with removalCount cells cleared, or as many as
// uniqueness allows. Carving works in passes over a reshuffled permutation
// of all 81 positions: clear a cell, keep the clearing only if the board
// still has exactly one solution, otherwise put the value back. A new pass
// starts only while the target is unmet and the previous pass cleared at
// least one cell, so generation always terminates; once no single cell can
// be cleared the puzzle is minimal and the best achievable board is
// returned. Callers inspect the empty-cell count for shortfalls.
func (g *Unique) Generate(ctx context.Context, removalCount int) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if removalCount < 0 {
		removalCount = 0
	}
	if removalCount > domain.Size*domain.Size {
		removalCount = domain.Size * domain.Size
	}

	// Full solved grid from an empty board, randomized for variety.
	full := &domain.Board{}
	ok, st := g.solver.Solve(ctx, full, true)
	nodes := st.Nodes
	if !ok {
		err := ctx.Err()
		if err == nil {
			err = errors.New("could not build a solved grid")
		}
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}

	removed := 0
	for removed < removalCount && ctx.Err() == nil {
		progress := false
		for _, pos := range g.rng.Perm(domain.Size * domain.Size) {
			if removed >= removalCount || ctx.Err() != nil {
				break
			}
			r, c := pos/domain.Size, pos%domain.Size
			old := full.Cells[r][c]
			if old == 0 {
				continue
			}
			full.Cells[r][c] = 0
			n, cst := g.solver.CountSolutionsUpTo(ctx, full, 2)
			nodes += cst.Nodes
			if n != 1 {
				full.Cells[r][c] = old
				continue
			}
			removed++
			progress = true
		}
		if !progress {
			break
		}
	}

	// The carved grid becomes the givens of the new board.
	out := domain.NewBoard(full.Cells)
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

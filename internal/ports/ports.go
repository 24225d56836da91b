package ports

import (
	"context"
	"time"

	"svw.info/sudoku-engine/internal/domain"
)

// Stats captures the cost of a search operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver runs backtracking search over a board. Solve and the counting
// operations mutate the board in place while searching; callers that need
// the original afterwards must pass a clone.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board, randomize bool) (bool, Stats)
	CountSolutions(ctx context.Context, b *domain.Board) (int, Stats)
	CountSolutionsUpTo(ctx context.Context, b *domain.Board, limit int) (int, Stats)
}

// Generator produces puzzles with a unique solution.
type Generator interface {
	Generate(ctx context.Context, removalCount int) (*domain.Board, Stats, error)
}

// Validator performs fast whole-board conflict checks (row/col/block).
type Validator interface {
	Validate(b *domain.Board) (ok bool, conflicts []domain.CellCoord)
}

// Hinter returns the next logical deduction, if one of its techniques
// applies. It never mutates the board.
type Hinter interface {
	NextHint(b *domain.Board) (domain.Hint, bool)
}

// Storage persists the generated-puzzle library.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
	Close() error
}

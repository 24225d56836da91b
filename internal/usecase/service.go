package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/metrics"
	"svw.info/sudoku-engine/internal/ports"
)

var (
	errNotConfigured = errors.New("usecase dependency not configured")

	// ErrGivenCell rejects writes to original puzzle cells.
	ErrGivenCell = errors.New("cell is a given and cannot be changed")

	// ErrUnsolvable reports a board with no completion. A normal outcome,
	// surfaced as an error only at the service boundary.
	ErrUnsolvable = errors.New("board has no solution")
)

// Service is the facade the CLI and HTTP adapters consume. GeneratorFor
// builds a freshly seeded generator per request so puzzle generation is
// reproducible from the recorded seed.
type Service struct {
	Solver       ports.Solver
	Generator    ports.Generator
	GeneratorFor func(seed int64) ports.Generator
	Validator    ports.Validator
	Hinter       ports.Hinter
	Storage      ports.Storage
}

func NewService(s ports.Solver, g ports.Generator, gf func(seed int64) ports.Generator,
	v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, GeneratorFor: gf, Validator: v, Hinter: h, Storage: st}
}

// Solve completes b in place and returns it. ErrUnsolvable when no
// completion exists.
func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	ok, st := u.Solver.Solve(ctx, b, false)
	metrics.SolveDuration.Observe(st.Duration.Seconds())
	metrics.SearchNodes.WithLabelValues("solve").Observe(float64(st.Nodes))
	if !ok {
		metrics.SolveTotal.WithLabelValues("unsolvable").Inc()
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrUnsolvable
	}
	metrics.SolveTotal.WithLabelValues("solved").Inc()
	return b, st, nil
}

// CountSolutions counts completions, bounded by limit (0 = exhaustive).
func (u *Service) CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, ports.Stats, error) {
	if u.Solver == nil {
		return 0, ports.Stats{}, errNotConfigured
	}
	n, st := u.Solver.CountSolutionsUpTo(ctx, b, limit)
	metrics.SearchNodes.WithLabelValues("count").Observe(float64(st.Nodes))
	return n, st, ctx.Err()
}

// Generate carves a puzzle with the given removal target using the default
// generator.
func (u *Service) Generate(ctx context.Context, removalCount int) (*domain.Board, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, removalCount)
}

// GeneratePuzzle produces a library puzzle at the difficulty's removal
// target. Seed 0 picks an ambient seed; the used seed is recorded on the
// puzzle so it can be regenerated.
func (u *Service) GeneratePuzzle(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	g := u.Generator
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if u.GeneratorFor != nil {
		g = u.GeneratorFor(seed)
	}
	if g == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	board, st, err := g.Generate(ctx, d.RemovalTarget())
	metrics.GenerateDuration.Observe(st.Duration.Seconds())
	metrics.SearchNodes.WithLabelValues("generate").Observe(float64(st.Nodes))
	if err != nil {
		return nil, st, err
	}
	metrics.GenerateTotal.WithLabelValues(d.String()).Inc()
	p := &domain.Puzzle{
		ID:         uuid.NewString(),
		Seed:       seed,
		Difficulty: d,
		Board:      *board,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, st, nil
}

// SetCell applies user input to b, refusing writes to givens.
func (u *Service) SetCell(b *domain.Board, row, col int, v uint8) error {
	if b.IsGiven(row, col) {
		return ErrGivenCell
	}
	return b.Set(row, col, v)
}

func (u *Service) Validate(b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	ok, conflicts := u.Validator.Validate(b)
	return ok, conflicts, nil
}

func (u *Service) Hint(b *domain.Board) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	h, ok := u.Hinter.NextHint(b)
	if ok {
		metrics.HintTotal.WithLabelValues(h.Technique).Inc()
	} else {
		metrics.HintTotal.WithLabelValues("none").Inc()
	}
	return h, ok, nil
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}

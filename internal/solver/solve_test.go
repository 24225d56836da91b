package solver

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
)

// A classic, solvable puzzle (0 = empty).
var samplePuzzle = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var sampleSolution = [9][9]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

// A known 'evil' difficulty puzzle.
var evilPuzzle = [9][9]uint8{
	{8, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 3, 6, 0, 0, 0, 0, 0},
	{0, 7, 0, 0, 9, 0, 2, 0, 0},
	{0, 5, 0, 0, 0, 7, 0, 0, 0},
	{0, 0, 0, 0, 4, 5, 7, 0, 0},
	{0, 0, 0, 1, 0, 0, 0, 3, 0},
	{0, 0, 1, 0, 0, 0, 0, 6, 8},
	{0, 0, 8, 5, 0, 0, 0, 1, 0},
	{0, 9, 0, 0, 0, 0, 4, 0, 0},
}

func newSeeded(seed int64) *Backtracking {
	return NewBacktracking(rand.New(rand.NewSource(seed)))
}

func TestSolveSoundness(t *testing.T) {
	b := domain.NewBoard(samplePuzzle)
	ok, st := newSeeded(1).Solve(context.Background(), b, false)
	require.True(t, ok, "nodes=%d dur=%v", st.Nodes, st.Duration)
	assert.True(t, b.IsSolved())
	assert.Equal(t, sampleSolution, b.Cells)
}

func TestSolveDeterministicWithoutRandomize(t *testing.T) {
	first := domain.NewBoard(samplePuzzle)
	second := domain.NewBoard(samplePuzzle)
	s := newSeeded(1)
	ok, _ := s.Solve(context.Background(), first, false)
	require.True(t, ok)
	ok, _ = s.Solve(context.Background(), second, false)
	require.True(t, ok)
	assert.Equal(t, first.Cells, second.Cells)
}

func TestSolveAlreadySolvedBoard(t *testing.T) {
	b := domain.NewBoard(sampleSolution)
	ok, st := newSeeded(1).Solve(context.Background(), b, false)
	assert.True(t, ok)
	assert.Zero(t, st.Nodes, "no branch points on a full board")
	assert.Equal(t, sampleSolution, b.Cells)
}

func TestSolveEvilPuzzle(t *testing.T) {
	b := domain.NewBoard(evilPuzzle)
	ok, _ := newSeeded(42).Solve(context.Background(), b, true)
	require.True(t, ok)
	assert.True(t, b.IsComplete())
	assert.True(t, b.IsSolved())
	// Givens survived the search.
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if evilPuzzle[r][c] != 0 {
				assert.Equal(t, evilPuzzle[r][c], b.Cells[r][c], "given r=%d c=%d", r, c)
			}
		}
	}
}

func TestSolveUnsolvableReturnsFalse(t *testing.T) {
	// (0,8) needs a 9 for its row, but column 8 already has one.
	var grid [9][9]uint8
	for c := 0; c < 8; c++ {
		grid[0][c] = uint8(c + 1)
	}
	grid[1][8] = 9

	b := domain.NewBoard(grid)
	ok, _ := newSeeded(1).Solve(context.Background(), b, false)
	assert.False(t, ok)
	assert.Equal(t, grid, b.Cells, "failed search leaves the board as it came in")
}

func TestSolveCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b := domain.NewBoard(samplePuzzle)
	ok, _ := newSeeded(1).Solve(ctx, b, false)
	assert.False(t, ok)
}

func TestCountSolutionsOnSolvedBoard(t *testing.T) {
	b := domain.NewBoard(sampleSolution)
	n, _ := newSeeded(1).CountSolutions(context.Background(), b)
	assert.Equal(t, 1, n)
}

func TestCountSolutionsUniquePuzzle(t *testing.T) {
	b := domain.NewBoard(samplePuzzle)
	n, _ := newSeeded(1).CountSolutions(context.Background(), b)
	assert.Equal(t, 1, n)
	assert.Equal(t, samplePuzzle, b.Cells, "counting restores the board")
}

// twoSolutionGrid blanks an unavoidable rectangle: cells (3,5),(3,8),(4,5),
// (4,8) hold 1/3 and 3/1, swappable without breaking any unit.
func twoSolutionGrid() [9][9]uint8 {
	g := sampleSolution
	g[3][5], g[3][8], g[4][5], g[4][8] = 0, 0, 0, 0
	return g
}

func TestCountSolutionsTwoCompletions(t *testing.T) {
	grid := twoSolutionGrid()
	b := domain.NewBoard(grid)
	n, _ := newSeeded(1).CountSolutions(context.Background(), b)
	assert.Equal(t, 2, n)
	assert.Equal(t, grid, b.Cells)
}

func TestCountSolutionsUpToShortCircuits(t *testing.T) {
	grid := twoSolutionGrid()
	b := domain.NewBoard(grid)
	s := newSeeded(1)

	n, _ := s.CountSolutionsUpTo(context.Background(), b, 2)
	assert.Equal(t, 2, n)
	assert.Equal(t, grid, b.Cells, "board restored even when the limit stops the search")

	n, _ = s.CountSolutionsUpTo(context.Background(), b, 1)
	assert.Equal(t, 1, n)

	n, _ = s.CountSolutionsUpTo(context.Background(), domain.NewBoard(samplePuzzle), 2)
	assert.Equal(t, 1, n, "unique puzzle stays at one")
}

func TestRandomizedSolvesVary(t *testing.T) {
	// Two different seeds on an empty board should disagree somewhere;
	// with shuffled candidates at 81 branch points a collision is
	// practically impossible.
	first := &domain.Board{}
	second := &domain.Board{}
	ok, _ := newSeeded(1).Solve(context.Background(), first, true)
	require.True(t, ok)
	ok, _ = newSeeded(2).Solve(context.Background(), second, true)
	require.True(t, ok)
	assert.True(t, first.IsSolved())
	assert.True(t, second.IsSolved())
	assert.NotEqual(t, first.Cells, second.Cells)
}

package httpadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/generator"
	"svw.info/sudoku-engine/internal/hint"
	"svw.info/sudoku-engine/internal/infrastructure/storage"
	"svw.info/sudoku-engine/internal/ports"
	"svw.info/sudoku-engine/internal/solver"
	"svw.info/sudoku-engine/internal/usecase"
	"svw.info/sudoku-engine/internal/validator"
)

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

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gf := func(seed int64) ports.Generator {
		return generator.NewUnique(
			solver.NewBacktracking(rand.New(rand.NewSource(seed))),
			rand.New(rand.NewSource(seed)))
	}
	store, err := storage.NewBadgerInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	uc := usecase.NewService(
		solver.NewBacktracking(rand.New(rand.NewSource(1))),
		gf(1), gf, validator.New(), hint.NewEngine(), store)

	r := gin.New()
	New(uc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestSolveEndpoint(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/solve", gin.H{"board": samplePuzzle})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Board [9][9]uint8 `json:"board"`
		Nodes int         `json:"nodes"`
	}
	decode(t, w, &resp)
	assert.True(t, domain.NewBoard(resp.Board).IsSolved())
	assert.Positive(t, resp.Nodes)
}

func TestSolveEndpointUnsolvable(t *testing.T) {
	var grid [9][9]uint8
	for c := 0; c < 8; c++ {
		grid[0][c] = uint8(c + 1)
	}
	grid[1][8] = 9

	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/solve", gin.H{"board": grid})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, "UNSOLVABLE", resp.Code)
}

func TestSolveEndpointBadBody(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
}

func TestValidateEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/validate", gin.H{"board": samplePuzzle})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		OK        bool               `json:"ok"`
		Conflicts []domain.CellCoord `json:"conflicts"`
	}
	decode(t, w, &resp)
	assert.True(t, resp.OK)
	assert.Empty(t, resp.Conflicts)

	bad := samplePuzzle
	bad[0][2] = 5 // duplicates the 5 in row 0
	w = doJSON(t, r, http.MethodPost, "/api/v1/validate", gin.H{"board": bad})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &resp)
	assert.False(t, resp.OK)
	assert.NotEmpty(t, resp.Conflicts)
}

func TestHintEndpoint(t *testing.T) {
	grid := [9][9]uint8{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 0, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 9},
	}

	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/hint", gin.H{"board": grid})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Found bool         `json:"found"`
		Hint  *domain.Hint `json:"hint"`
	}
	decode(t, w, &resp)
	require.True(t, resp.Found)
	require.NotNil(t, resp.Hint)
	assert.Equal(t, "Naked Single", resp.Hint.Technique)
	assert.Equal(t, uint8(5), resp.Hint.Value)
}

func TestHintEndpointNoHint(t *testing.T) {
	grid := [9][9]uint8{
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

	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/hint", gin.H{"board": grid})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Found bool `json:"found"`
	}
	decode(t, w, &resp)
	assert.False(t, resp.Found)
}

func TestGenerateEndpoint(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/generate", gin.H{"difficulty": "easy", "seed": 7})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Puzzle     *domain.Puzzle `json:"puzzle"`
		EmptyCells int            `json:"emptyCells"`
	}
	decode(t, w, &resp)
	require.NotNil(t, resp.Puzzle)
	assert.NotEmpty(t, resp.Puzzle.ID)
	assert.EqualValues(t, 7, resp.Puzzle.Seed)
	assert.Equal(t, domain.Easy, resp.Puzzle.Difficulty)
	assert.GreaterOrEqual(t, resp.EmptyCells, 35)
	assert.LessOrEqual(t, resp.EmptyCells, 45)
}

func TestGenerateEndpointRejectsUnknownDifficulty(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/v1/generate", gin.H{"difficulty": "nightmare"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
}

func TestPuzzleLibraryRoundTrip(t *testing.T) {
	r := newTestRouter(t)

	p := domain.Puzzle{
		Difficulty: domain.Hard,
		Board:      *domain.NewBoard(samplePuzzle),
		Name:       "saved game",
	}
	w := doJSON(t, r, http.MethodPost, "/api/v1/puzzles", p)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var saved struct {
		ID string `json:"id"`
	}
	decode(t, w, &saved)
	require.NotEmpty(t, saved.ID)

	w = doJSON(t, r, http.MethodGet, "/api/v1/puzzles/"+saved.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var loaded struct {
		Puzzle *domain.Puzzle `json:"puzzle"`
	}
	decode(t, w, &loaded)
	require.NotNil(t, loaded.Puzzle)
	assert.Equal(t, "saved game", loaded.Puzzle.Name)
	assert.Equal(t, samplePuzzle, loaded.Puzzle.Board.Cells)

	w = doJSON(t, r, http.MethodGet, "/api/v1/puzzles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Puzzles []domain.PuzzleMeta `json:"puzzles"`
	}
	decode(t, w, &list)
	require.Len(t, list.Puzzles, 1)
	assert.Equal(t, saved.ID, list.Puzzles[0].ID)
}

func TestLoadUnknownPuzzle(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/v1/puzzles/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, "NOT_FOUND", resp.Code)
}

func TestListEmptyLibrary(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/v1/puzzles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"puzzles\":[]")
}

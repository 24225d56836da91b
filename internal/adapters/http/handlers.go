// Package httpadapter exposes the engine as a JSON API on gin.
package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/infrastructure/storage"
	"svw.info/sudoku-engine/internal/usecase"
)

type Handler struct {
	uc     *usecase.Service
	logger *slog.Logger
}

func New(uc *usecase.Service, logger *slog.Logger) *Handler {
	return &Handler{uc: uc, logger: logger}
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Register wires all routes onto the engine.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	v1.POST("/generate", h.handleGenerate)
	v1.POST("/solve", h.handleSolve)
	v1.POST("/validate", h.handleValidate)
	v1.POST("/hint", h.handleHint)
	v1.POST("/puzzles", h.handleSave)
	v1.GET("/puzzles", h.handleList)
	v1.GET("/puzzles/:id", h.handleLoad)
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty" binding:"omitempty,oneof=easy medium hard expert"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle"`
	EmptyCells int            `json:"emptyCells"`
	DurationMs int64          `json:"durationMs"`
	Nodes      int            `json:"nodes"`
}

func (h *Handler) handleGenerate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
		return
	}
	d := domain.ParseDifficulty(req.Difficulty)
	p, st, err := h.uc.GeneratePuzzle(c.Request.Context(), req.Seed, d)
	if err != nil {
		h.logger.Error("generate failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "GENERATE_FAILED"})
		return
	}
	c.JSON(http.StatusOK, generateResp{
		Puzzle:     p,
		EmptyCells: p.Board.EmptyCells(),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Solve ----

type solveReq struct {
	Board [domain.Size][domain.Size]uint8 `json:"board"`
}

type solveResp struct {
	Board      [domain.Size][domain.Size]uint8 `json:"board"`
	DurationMs int64                           `json:"durationMs"`
	Nodes      int                             `json:"nodes"`
}

func (h *Handler) handleSolve(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
		return
	}
	b := domain.NewBoard(req.Board)
	out, st, err := h.uc.Solve(c.Request.Context(), b)
	if err != nil {
		if errors.Is(err, usecase.ErrUnsolvable) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Code: "UNSOLVABLE"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "SOLVE_FAILED"})
		return
	}
	c.JSON(http.StatusOK, solveResp{Board: out.Cells, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Validate ----

type validateReq struct {
	Board [domain.Size][domain.Size]uint8 `json:"board"`
}

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (h *Handler) handleValidate(c *gin.Context) {
	var req validateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
		return
	}
	ok, conflicts, err := h.uc.Validate(domain.NewBoard(req.Board))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "VALIDATE_FAILED"})
		return
	}
	c.JSON(http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	Board [domain.Size][domain.Size]uint8 `json:"board"`
}

type hintResp struct {
	Found bool         `json:"found"`
	Hint  *domain.Hint `json:"hint,omitempty"`
}

func (h *Handler) handleHint(c *gin.Context) {
	var req hintReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
		return
	}
	hint, found, err := h.uc.Hint(domain.NewBoard(req.Board))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "HINT_FAILED"})
		return
	}
	resp := hintResp{Found: found}
	if found {
		resp.Hint = &hint
	}
	c.JSON(http.StatusOK, resp)
}

// ---- Puzzle library ----

func (h *Handler) handleSave(c *gin.Context) {
	var p domain.Puzzle
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
		return
	}
	if err := h.uc.Save(c.Request.Context(), &p); err != nil {
		h.logger.Error("save failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "SAVE_FAILED"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": p.ID})
}

func (h *Handler) handleLoad(c *gin.Context) {
	p, err := h.uc.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "NOT_FOUND"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "LOAD_FAILED"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puzzle": p})
}

func (h *Handler) handleList(c *gin.Context) {
	ps, err := h.uc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: "LIST_FAILED"})
		return
	}
	if ps == nil {
		ps = []domain.PuzzleMeta{}
	}
	c.JSON(http.StatusOK, gin.H{"puzzles": ps})
}

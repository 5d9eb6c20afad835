package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"svw.info/kakuro/internal/domain"
	"svw.info/kakuro/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
	// SolveTimeout bounds one solve call; zero means no bound.
	SolveTimeout time.Duration

	metrics *metrics
}

func New(uc *usecase.Service, solveTimeout time.Duration) *Handler {
	return &Handler{UC: uc, SolveTimeout: solveTimeout, metrics: newMetrics()}
}

func (h *Handler) Register(r *gin.Engine) {
	r.POST("/api/solve", h.handleSolve)
	r.POST("/api/validate", h.handleValidate)
	r.POST("/api/hint", h.handleHint)
	r.POST("/api/save", h.handleSave)
	r.POST("/api/load", h.handleLoad)
	r.GET("/api/list", h.handleList)
	r.GET("/metrics", h.metrics.handler())
}

// malformedStatus writes the 400 response for a MalformedPuzzleError,
// carrying the offending coordinate so clients can point at the cell.
func malformedStatus(c *gin.Context, me *domain.MalformedPuzzleError) {
	c.JSON(http.StatusBadRequest, gin.H{"error": me.Reason, "x": me.X, "y": me.Y})
}

// ---- Solve ----

type solveResp struct {
	SolutionCells []domain.SolutionCell `json:"solution_cells,omitempty"`
	Unsatisfiable bool                  `json:"unsatisfiable,omitempty"`
	DurationMs    int64                 `json:"durationMs"`
	Nodes         int                   `json:"nodes"`
	Error         string                `json:"error,omitempty"`
}

func (h *Handler) handleSolve(c *gin.Context) {
	var doc domain.PuzzleDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	g, err := domain.ParseGrid(&doc)
	if err != nil {
		h.metrics.observeSolve("malformed", 0)
		var me *domain.MalformedPuzzleError
		if errors.As(err, &me) {
			malformedStatus(c, me)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if h.SolveTimeout > 0 {
		var cancel func()
		ctx, cancel = context.WithTimeout(ctx, h.SolveTimeout)
		defer cancel()
	}
	sol, st, err := h.UC.Solve(ctx, g)
	switch {
	case err == nil:
		h.metrics.observeSolve("solved", st.Duration)
		c.JSON(http.StatusOK, solveResp{
			SolutionCells: sol.Cells,
			DurationMs:    st.Duration.Milliseconds(),
			Nodes:         st.Nodes,
		})
	case errors.Is(err, domain.ErrUnsatisfiable):
		h.metrics.observeSolve("unsatisfiable", st.Duration)
		c.JSON(http.StatusOK, solveResp{
			Unsatisfiable: true,
			DurationMs:    st.Duration.Milliseconds(),
			Nodes:         st.Nodes,
		})
	default:
		h.metrics.observeSolve("error", st.Duration)
		var me *domain.MalformedPuzzleError
		if errors.As(err, &me) {
			malformedStatus(c, me)
			return
		}
		c.JSON(http.StatusInternalServerError, solveResp{Error: err.Error(), Nodes: st.Nodes})
	}
}

// ---- Validate ----

type validateResp struct {
	OK     bool                 `json:"ok"`
	Issues []domain.FormatIssue `json:"issues,omitempty"`
	Error  string               `json:"error,omitempty"`
}

func (h *Handler) handleValidate(c *gin.Context) {
	var doc domain.PuzzleDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, issues, err := h.UC.ValidateFormat(c.Request.Context(), &doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, validateResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, validateResp{OK: ok, Issues: issues})
}

// ---- Hint ----

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(c *gin.Context) {
	var doc domain.PuzzleDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	g, err := domain.ParseGrid(&doc)
	if err != nil {
		var me *domain.MalformedPuzzleError
		if errors.As(err, &me) {
			malformedStatus(c, me)
			return
		}
		c.JSON(http.StatusBadRequest, hintResp{Error: err.Error()})
		return
	}
	hh, found, err := h.UC.Hint(c.Request.Context(), g)
	if err != nil {
		var me *domain.MalformedPuzzleError
		if errors.As(err, &me) {
			malformedStatus(c, me)
			return
		}
		c.JSON(http.StatusInternalServerError, hintResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, hintResp{Found: found, Hint: hh})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(c *gin.Context) {
	var p domain.Puzzle
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(c.Request.Context(), &p); err != nil {
		c.JSON(http.StatusInternalServerError, saveResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}
type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(c *gin.Context) {
	var req loadReq
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		c.JSON(http.StatusBadRequest, loadResp{Error: "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.Load(c.Request.Context(), req.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, loadResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(c *gin.Context) {
	ps, err := h.UC.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, listResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, listResp{Puzzles: ps})
}

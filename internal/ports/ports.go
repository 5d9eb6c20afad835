package ports

import (
	"context"
	"time"

	"svw.info/kakuro/internal/domain"
)

// Stats captures performance characteristics of an operation. Nodes counts
// branch trials; a solve completed by propagation alone reports 0.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver finds a digit assignment for a grid or proves none exists.
// Unsatisfiable grids yield domain.ErrUnsatisfiable; structural faults
// yield a *domain.MalformedPuzzleError.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid) (*domain.Solution, Stats, error)
}

// Hinter returns the next forced deduction, when one exists.
type Hinter interface {
	Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error)
}

// Validator performs structural checks on a puzzle document.
type Validator interface {
	ValidateFormat(ctx context.Context, doc *domain.PuzzleDocument) (ok bool, issues []domain.FormatIssue, err error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}

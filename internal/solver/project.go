package solver

import (
	"svw.info/kakuro/internal/domain"
	"svw.info/kakuro/internal/runs"
)

// project maps a completed assignment back onto cell coordinates. Called
// only after search succeeds; the blanks of ix are already in grid reading
// order, so the projected cells are too.
func project(g *domain.Grid, ix *runs.Index, assign []uint8) *domain.Solution {
	cells := make([]domain.SolutionCell, len(ix.Blanks))
	for i, c := range ix.Blanks {
		cells[i] = domain.SolutionCell{X: c.X, Y: c.Y, Value: int(assign[i])}
	}
	return domain.NewSolution(g.Rows, g.Cols, cells)
}

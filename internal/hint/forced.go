// Package hint surfaces the next forced deduction of a puzzle: a blank
// whose crossing runs leave a single possible digit. It performs one level
// of combination-table reasoning, never search, so a returned hint is
// always a step a careful human could have found.
package hint

import (
	"context"
	"fmt"

	"svw.info/kakuro/internal/combo"
	"svw.info/kakuro/internal/domain"
	"svw.info/kakuro/internal/runs"
)

// Forced implements a minimal Hinter over run digit-domains.
type Forced struct{}

func NewForced() *Forced { return &Forced{} }

// Hint returns the first blank, in grid reading order, whose digit domain
// is a singleton given the pre-filled values.
func (h *Forced) Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error) {
	ix, err := runs.Extract(g)
	if err != nil {
		return domain.Hint{}, false, err
	}

	avail := make([]combo.Combination, len(ix.Runs))
	for r, run := range ix.Runs {
		var fixed combo.Combination
		for _, c := range run.Cells {
			if v := int(g.At(c.X, c.Y).Value); v != 0 {
				fixed |= combo.FromDigit(v)
			}
		}
		var u combo.Combination
		for _, cand := range combo.For(len(run.Cells), run.Sum) {
			if fixed&^cand == 0 {
				u |= cand
			}
		}
		avail[r] = u &^ fixed
	}

	for i, c := range ix.Blanks {
		if g.At(c.X, c.Y).Value != 0 {
			continue
		}
		dom := avail[ix.Horizontal[i]] & avail[ix.Vertical[i]]
		if d, ok := dom.Single(); ok {
			return domain.Hint{
				Message: fmt.Sprintf("Forced: only %d fits here", d),
				Cell:    c,
				Value:   d,
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

// Package solver assigns digits to the blank cells of a Kakuro grid via
// constraint propagation interleaved with backtracking search. Each run
// keeps a candidate set, the subset of its combination-table entry still
// consistent with the partial assignment; candidate sets only shrink.
package solver

import (
	"context"
	"time"

	"svw.info/kakuro/internal/combo"
	"svw.info/kakuro/internal/domain"
	"svw.info/kakuro/internal/ports"
	"svw.info/kakuro/internal/runs"
)

// ConstraintSolver is a single-threaded, depth-first solver.
type ConstraintSolver struct{}

func NewConstraintSolver() *ConstraintSolver { return &ConstraintSolver{} }

// Solve finds the assignment satisfying every run's combination membership
// and every crossing-run agreement, or reports domain.ErrUnsatisfiable.
// For a given grid the result is deterministic: branch cells are chosen by
// fewest remaining digits with ties broken in grid reading order, and
// digits are tried ascending, so repeated solves return identical
// solutions even when the puzzle admits several.
func (s *ConstraintSolver) Solve(ctx context.Context, g *domain.Grid) (*domain.Solution, ports.Stats, error) {
	start := time.Now()
	ix, err := runs.Extract(g)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}

	st := &state{
		ix:         ix,
		assign:     make([]uint8, len(ix.Blanks)),
		unassigned: len(ix.Blanks),
		fixed:      make([]combo.Combination, len(ix.Runs)),
		cands:      make([][]combo.Combination, len(ix.Runs)),
	}
	for r, run := range ix.Runs {
		entry := combo.For(len(run.Cells), run.Sum)
		if len(entry) == 0 {
			// No digit subset of this length reaches the target sum.
			return nil, ports.Stats{Duration: time.Since(start)}, domain.ErrUnsatisfiable
		}
		st.cands[r] = append([]combo.Combination(nil), entry...)
	}
	for i, c := range ix.Blanks {
		if v := int(g.At(c.X, c.Y).Value); v != 0 {
			if !st.set(i, v) {
				return nil, ports.Stats{Duration: time.Since(start)}, domain.ErrUnsatisfiable
			}
		}
	}

	nodes := 0
	res := s.search(ctx, st, &nodes)
	stats := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if res == nil {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		return nil, stats, domain.ErrUnsatisfiable
	}
	return project(g, ix, res), stats, nil
}

// search runs propagation to a fixed point, then branches on the cell with
// the fewest remaining digits. Branch failure is ordinary control flow: a
// nil return, never an error. Every trial works on its own state copy, so
// unwinding a failed branch is a plain discard.
func (s *ConstraintSolver) search(ctx context.Context, st *state, nodes *int) []uint8 {
	if !st.propagate() {
		return nil
	}
	if st.unassigned == 0 {
		return st.assign
	}
	i, dom := st.pickCell()
	for d := 1; d <= 9; d++ {
		if !dom.Has(d) {
			continue
		}
		if ctx.Err() != nil {
			return nil
		}
		*nodes++
		trial := st.clone()
		if !trial.set(i, d) {
			continue
		}
		if res := s.search(ctx, trial, nodes); res != nil {
			return res
		}
	}
	return nil
}

package solver

import (
	"math/bits"

	"svw.info/kakuro/internal/combo"
	"svw.info/kakuro/internal/runs"
)

// state is the mutable scratch of one search node: the partial assignment,
// per-run fixed-digit masks, and per-run surviving candidate sets. The run
// index itself is shared and read-only.
type state struct {
	ix         *runs.Index
	assign     []uint8
	unassigned int
	fixed      []combo.Combination
	cands      [][]combo.Combination
}

func (st *state) clone() *state {
	cp := &state{
		ix:         st.ix,
		assign:     append([]uint8(nil), st.assign...),
		unassigned: st.unassigned,
		fixed:      append([]combo.Combination(nil), st.fixed...),
		cands:      make([][]combo.Combination, len(st.cands)),
	}
	for r := range st.cands {
		cp.cands[r] = append([]combo.Combination(nil), st.cands[r]...)
	}
	return cp
}

// set fixes blank i to digit d and prunes the candidate sets of both runs
// through it: a combination survives only while it contains every digit
// fixed in its run. Reports false on contradiction.
func (st *state) set(i, d int) bool {
	st.assign[i] = uint8(d)
	st.unassigned--
	for _, r := range [2]int{st.ix.Horizontal[i], st.ix.Vertical[i]} {
		if st.fixed[r].Has(d) {
			return false
		}
		st.fixed[r] |= combo.FromDigit(d)
		kept := st.cands[r][:0]
		for _, c := range st.cands[r] {
			if st.fixed[r]&^c == 0 {
				kept = append(kept, c)
			}
		}
		st.cands[r] = kept
		if len(kept) == 0 {
			return false
		}
	}
	return true
}

// avail is the union of digits some surviving candidate of run r could
// still contribute, excluding digits already fixed in the run.
func (st *state) avail(r int) combo.Combination {
	var u combo.Combination
	for _, c := range st.cands[r] {
		u |= c
	}
	return u &^ st.fixed[r]
}

// domain is the digit set open to blank i: the intersection of what its
// horizontal and vertical runs can still supply.
func (st *state) domain(i int) combo.Combination {
	return st.avail(st.ix.Horizontal[i]) & st.avail(st.ix.Vertical[i])
}

// propagate makes forced assignments until a fixed point: whenever a
// blank's domain shrinks to one digit, fix it, which prunes both crossing
// runs and may force further cells. Reports false when any domain or
// candidate set empties out.
func (st *state) propagate() bool {
	for {
		changed := false
		for i := range st.assign {
			if st.assign[i] != 0 {
				continue
			}
			dom := st.domain(i)
			if dom == 0 {
				return false
			}
			if d, ok := dom.Single(); ok {
				if !st.set(i, d) {
					return false
				}
				changed = true
			}
		}
		if !changed {
			return true
		}
	}
}

// pickCell selects the unassigned blank with the smallest domain
// (minimum remaining values), ties broken by grid reading order.
func (st *state) pickCell() (int, combo.Combination) {
	best, bestDom, bestN := -1, combo.Combination(0), 10
	for i := range st.assign {
		if st.assign[i] != 0 {
			continue
		}
		dom := st.domain(i)
		if n := bits.OnesCount16(uint16(dom)); n < bestN {
			best, bestDom, bestN = i, dom, n
		}
	}
	return best, bestDom
}

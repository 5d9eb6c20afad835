// Package runs derives the horizontal and vertical runs of a Kakuro grid
// and the blank-cell cross-reference the solver needs.
package runs

import (
	"fmt"

	"svw.info/kakuro/internal/combo"
	"svw.info/kakuro/internal/domain"
)

// Index is the run list plus per-blank lookups. Blanks are in grid reading
// order (row-major); Horizontal and Vertical give, for each blank index,
// the index of its run in Runs. Immutable once extracted.
type Index struct {
	Runs   []domain.Run
	Blanks []domain.Coord

	Horizontal []int
	Vertical   []int

	blankIdx map[domain.Coord]int
}

// BlankIndex returns the position of coordinate c in Blanks.
func (ix *Index) BlankIndex(c domain.Coord) (int, bool) {
	i, ok := ix.blankIdx[c]
	return i, ok
}

// Extract scans the grid for clue-anchored spans of blank cells. It is a
// pure function of the grid. It fails with a MalformedPuzzleError when a
// clue sum has no adjacent run, a run's length falls outside 2-9, a blank
// cell is missing its horizontal or vertical run, or two pre-filled values
// collide within one run.
func Extract(g *domain.Grid) (*Index, error) {
	ix := &Index{blankIdx: make(map[domain.Coord]int)}
	for x := 0; x < g.Rows; x++ {
		for y := 0; y < g.Cols; y++ {
			if g.At(x, y).Kind == domain.Blank {
				ix.blankIdx[domain.Coord{X: x, Y: y}] = len(ix.Blanks)
				ix.Blanks = append(ix.Blanks, domain.Coord{X: x, Y: y})
			}
		}
	}
	ix.Horizontal = fill(len(ix.Blanks), -1)
	ix.Vertical = fill(len(ix.Blanks), -1)

	for x := 0; x < g.Rows; x++ {
		for y := 0; y < g.Cols; y++ {
			c := g.At(x, y)
			if c.Kind != domain.Clue {
				continue
			}
			if c.Right > 0 {
				if err := ix.addRun(g, x, y, c.Right, domain.Horizontal); err != nil {
					return nil, err
				}
			}
			if c.Down > 0 {
				if err := ix.addRun(g, x, y, c.Down, domain.Vertical); err != nil {
					return nil, err
				}
			}
		}
	}

	// Every blank must sit in exactly one run of each orientation; a blank
	// reachable from no clue means the puzzle's borders are wrong.
	for i, c := range ix.Blanks {
		if ix.Horizontal[i] < 0 {
			return nil, domain.Malformed(c.X, c.Y, "blank cell belongs to no horizontal run")
		}
		if ix.Vertical[i] < 0 {
			return nil, domain.Malformed(c.X, c.Y, "blank cell belongs to no vertical run")
		}
	}
	return ix, nil
}

// addRun walks the span of blanks following the clue at (x, y).
func (ix *Index) addRun(g *domain.Grid, x, y, sum int, o domain.Orientation) error {
	dx, dy := 0, 1
	if o == domain.Vertical {
		dx, dy = 1, 0
	}
	var cells []domain.Coord
	var fixed combo.Combination
	for cx, cy := x+dx, y+dy; g.InBounds(cx, cy); cx, cy = cx+dx, cy+dy {
		cell := g.At(cx, cy)
		if cell.Kind != domain.Blank {
			break
		}
		cells = append(cells, domain.Coord{X: cx, Y: cy})
		if v := int(cell.Value); v != 0 {
			if fixed.Has(v) {
				return domain.Malformed(cx, cy, fmt.Sprintf("pre-filled %d duplicated within its run", v))
			}
			fixed |= combo.FromDigit(v)
		}
	}
	if len(cells) == 0 {
		return domain.Malformed(x, y, "clue sum has no adjacent run")
	}
	if len(cells) < combo.MinRunLen || len(cells) > combo.MaxRunLen {
		return domain.Malformed(x, y, fmt.Sprintf("run length %d outside 2-9", len(cells)))
	}

	r := len(ix.Runs)
	ix.Runs = append(ix.Runs, domain.Run{Sum: sum, Orientation: o, Cells: cells})
	link := ix.Horizontal
	if o == domain.Vertical {
		link = ix.Vertical
	}
	for _, c := range cells {
		link[ix.blankIdx[c]] = r
	}
	return nil
}

func fill(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}
	return s
}

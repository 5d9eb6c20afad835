package domain

import "fmt"

// ParseGrid builds the typed grid from a puzzle document. Positions not
// declared in doc.Cells become unassigned blanks. It fails with a
// MalformedPuzzleError when a position is out of bounds or declared twice,
// a clue carries no sum, a sum is not positive, or a pre-filled value lies
// outside 1-9. doc.SolutionCells are ignored here; use MergeSolution to
// re-apply a solution as pre-filled values.
func ParseGrid(doc *PuzzleDocument) (*Grid, error) {
	if doc == nil {
		return nil, MalformedDoc("no document")
	}
	if len(doc.Size) != 2 {
		return nil, MalformedDoc("size must be [rows, columns]")
	}
	rows, cols := doc.Size[0], doc.Size[1]
	if rows < 1 || cols < 1 {
		return nil, MalformedDoc(fmt.Sprintf("size %dx%d is not positive", rows, cols))
	}

	g := &Grid{Rows: rows, Cols: cols, cells: make([]Cell, rows*cols)}
	for i := range g.cells {
		g.cells[i].Kind = Blank
	}

	seen := make(map[Coord]bool, len(doc.Cells))
	for _, rec := range doc.Cells {
		if !g.InBounds(rec.X, rec.Y) {
			return nil, Malformed(rec.X, rec.Y, "cell out of bounds")
		}
		at := Coord{rec.X, rec.Y}
		if seen[at] {
			return nil, Malformed(rec.X, rec.Y, "cell declared more than once")
		}
		seen[at] = true

		cell := g.At(rec.X, rec.Y)
		switch {
		case rec.Right != nil || rec.Down != nil:
			if rec.Value != nil {
				return nil, Malformed(rec.X, rec.Y, "clue cell cannot hold a value")
			}
			cell.Kind = Clue
			if rec.Right != nil {
				if *rec.Right < 1 {
					return nil, Malformed(rec.X, rec.Y, "right sum must be positive")
				}
				cell.Right = *rec.Right
			}
			if rec.Down != nil {
				if *rec.Down < 1 {
					return nil, Malformed(rec.X, rec.Y, "down sum must be positive")
				}
				cell.Down = *rec.Down
			}
		case rec.Wall:
			if rec.Value != nil {
				return nil, Malformed(rec.X, rec.Y, "wall cell cannot hold a value")
			}
			cell.Kind = Wall
		case rec.Value != nil:
			if *rec.Value < 1 || *rec.Value > 9 {
				return nil, Malformed(rec.X, rec.Y, fmt.Sprintf("value %d outside 1-9", *rec.Value))
			}
			cell.Value = uint8(*rec.Value)
		default:
			// A bare record is a clue that declares neither sum.
			return nil, Malformed(rec.X, rec.Y, "clue cell declares neither right nor down sum")
		}
	}
	return g, nil
}

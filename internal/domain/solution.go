package domain

// Solution maps every blank cell of a solved grid to its digit.
// Cells are in grid reading order (row-major). Immutable once built.
type Solution struct {
	Rows, Cols int
	Cells      []SolutionCell
	byCoord    map[Coord]int
}

// NewSolution builds a Solution from projected cells.
func NewSolution(rows, cols int, cells []SolutionCell) *Solution {
	s := &Solution{
		Rows:    rows,
		Cols:    cols,
		Cells:   cells,
		byCoord: make(map[Coord]int, len(cells)),
	}
	for _, c := range cells {
		s.byCoord[Coord{c.X, c.Y}] = c.Value
	}
	return s
}

// ValueAt returns the solved digit at row x, column y, if (x, y) is a
// blank cell of the solved grid.
func (s *Solution) ValueAt(x, y int) (int, bool) {
	v, ok := s.byCoord[Coord{x, y}]
	return v, ok
}

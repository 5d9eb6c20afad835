package domain

// CellKind tags the three cell variants of a Kakuro grid.
type CellKind int

const (
	Wall CellKind = iota
	Clue
	Blank
)

// Cell is one typed grid position. Right and Down are clue target sums
// (0 = absent, valid only on Clue cells). Value is a pre-filled or solved
// digit (0 = unassigned, valid only on Blank cells).
type Cell struct {
	Kind  CellKind
	Right int
	Down  int
	Value uint8
}

// Coord identifies a cell; X is the row, Y is the column.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Orientation of a run.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Run is a maximal span of blank cells governed by one clue sum.
// Cells are ordered left-to-right (Horizontal) or top-to-bottom (Vertical).
type Run struct {
	Sum         int
	Orientation Orientation
	Cells       []Coord
}

// Grid is the fully-typed board. Immutable after ParseGrid.
type Grid struct {
	Rows, Cols int
	cells      []Cell
}

// At returns the cell at row x, column y. Callers must stay in bounds.
func (g *Grid) At(x, y int) *Cell { return &g.cells[x*g.Cols+y] }

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Rows && y >= 0 && y < g.Cols
}

// Hint describes a single forced deduction for the UI.
type Hint struct {
	Message string `json:"message,omitempty"`
	Cell    Coord  `json:"cell"`
	Value   int    `json:"value"`
}

// FormatIssue is one structural problem found in a puzzle document.
// Index is the offending position in the cells list, -1 for
// document-level issues.
type FormatIssue struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// Puzzle is a persisted Kakuro document with metadata.
type Puzzle struct {
	ID        string         `json:"id,omitempty"`
	Name      string         `json:"name,omitempty"`
	Document  PuzzleDocument `json:"puzzle"`
	CreatedAt int64          `json:"createdAt,omitempty"`
	Notes     string         `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Size      []int  `json:"size,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

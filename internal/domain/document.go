package domain

// PuzzleDocument is the persisted puzzle representation shared with all
// collaborators (CLI, storage, web). Size is [rows, columns]. Cells lists
// only the declared cells; any position not listed is an unassigned blank.
type PuzzleDocument struct {
	Size          []int          `json:"size"`
	Cells         []CellRecord   `json:"cells"`
	SolutionCells []SolutionCell `json:"solution_cells,omitempty"`
}

// CellRecord is one declared cell, tagged by which fields are present:
// a wall, a clue (right and/or down sum), or a pre-filled blank (value).
type CellRecord struct {
	X     int  `json:"x"`
	Y     int  `json:"y"`
	Wall  bool `json:"wall,omitempty"`
	Right *int `json:"right,omitempty"`
	Down  *int `json:"down,omitempty"`
	Value *int `json:"value,omitempty"`
}

// SolutionCell is one solved blank cell.
type SolutionCell struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Value int `json:"value"`
}

// MergeSolution returns a copy of doc with sol embedded twice: as
// solution_cells and as pre-filled value records, so the result re-parses
// into a fully assigned grid.
func MergeSolution(doc *PuzzleDocument, sol *Solution) *PuzzleDocument {
	out := &PuzzleDocument{
		Size:          append([]int(nil), doc.Size...),
		Cells:         make([]CellRecord, 0, len(doc.Cells)+len(sol.Cells)),
		SolutionCells: append([]SolutionCell(nil), sol.Cells...),
	}
	for _, c := range doc.Cells {
		// Pre-filled blanks are re-declared from the solution below.
		if c.Value != nil && !c.Wall && c.Right == nil && c.Down == nil {
			continue
		}
		out.Cells = append(out.Cells, c)
	}
	for _, s := range sol.Cells {
		v := s.Value
		out.Cells = append(out.Cells, CellRecord{X: s.X, Y: s.Y, Value: &v})
	}
	return out
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iptr(v int) *int { return &v }

// A minimal solvable puzzle: two row runs (3, 7) crossing two column
// runs (4, 6); unique solution 1,2 / 3,4.
func smallDoc() *PuzzleDocument {
	return &PuzzleDocument{
		Size: []int{3, 3},
		Cells: []CellRecord{
			{X: 0, Y: 0, Wall: true},
			{X: 0, Y: 1, Down: iptr(4)},
			{X: 0, Y: 2, Down: iptr(6)},
			{X: 1, Y: 0, Right: iptr(3)},
			{X: 2, Y: 0, Right: iptr(7)},
		},
	}
}

func TestParseGridClassifiesCells(t *testing.T) {
	doc := smallDoc()
	doc.Cells = append(doc.Cells, CellRecord{X: 1, Y: 1, Value: iptr(1)})

	g, err := ParseGrid(doc)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows)
	assert.Equal(t, 3, g.Cols)

	assert.Equal(t, Wall, g.At(0, 0).Kind)
	assert.Equal(t, Clue, g.At(0, 1).Kind)
	assert.Equal(t, 4, g.At(0, 1).Down)
	assert.Equal(t, Clue, g.At(1, 0).Kind)
	assert.Equal(t, 3, g.At(1, 0).Right)

	assert.Equal(t, Blank, g.At(1, 1).Kind)
	assert.Equal(t, uint8(1), g.At(1, 1).Value)

	// Undeclared positions are unassigned blanks.
	assert.Equal(t, Blank, g.At(2, 2).Kind)
	assert.Equal(t, uint8(0), g.At(2, 2).Value)
}

func TestParseGridRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		cell CellRecord
		x, y int
	}{
		{"out of bounds", CellRecord{X: 3, Y: 0, Wall: true}, 3, 0},
		{"clue without sums", CellRecord{X: 2, Y: 2}, 2, 2},
		{"value out of range", CellRecord{X: 1, Y: 1, Value: iptr(10)}, 1, 1},
		{"zero sum", CellRecord{X: 2, Y: 2, Right: iptr(0)}, 2, 2},
		{"wall with value", CellRecord{X: 2, Y: 2, Wall: true, Value: iptr(3)}, 2, 2},
		{"clue with value", CellRecord{X: 2, Y: 2, Right: iptr(5), Value: iptr(3)}, 2, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := smallDoc()
			doc.Cells = append(doc.Cells, tc.cell)
			_, err := ParseGrid(doc)
			var me *MalformedPuzzleError
			require.ErrorAs(t, err, &me)
			assert.Equal(t, tc.x, me.X)
			assert.Equal(t, tc.y, me.Y)
		})
	}
}

func TestParseGridRejectsDuplicateDeclaration(t *testing.T) {
	doc := smallDoc()
	doc.Cells = append(doc.Cells, CellRecord{X: 0, Y: 0, Wall: true})
	_, err := ParseGrid(doc)
	var me *MalformedPuzzleError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, 0, me.X)
	assert.Equal(t, 0, me.Y)
}

func TestParseGridRejectsBadSize(t *testing.T) {
	for _, size := range [][]int{nil, {3}, {3, 3, 3}, {0, 3}, {3, -1}} {
		_, err := ParseGrid(&PuzzleDocument{Size: size})
		var me *MalformedPuzzleError
		require.ErrorAs(t, err, &me, "size %v", size)
		assert.Equal(t, -1, me.X)
	}
}

func TestMergeSolutionReparses(t *testing.T) {
	doc := smallDoc()
	sol := NewSolution(3, 3, []SolutionCell{
		{X: 1, Y: 1, Value: 1}, {X: 1, Y: 2, Value: 2},
		{X: 2, Y: 1, Value: 3}, {X: 2, Y: 2, Value: 4},
	})

	merged := MergeSolution(doc, sol)
	assert.Equal(t, sol.Cells, merged.SolutionCells)

	g, err := ParseGrid(merged)
	require.NoError(t, err)
	for _, c := range sol.Cells {
		assert.Equal(t, uint8(c.Value), g.At(c.X, c.Y).Value)
	}

	v, ok := sol.ValueAt(2, 1)
	require.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = sol.ValueAt(0, 0)
	assert.False(t, ok)
}

package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/kakuro/internal/domain"
)

func iptr(v int) *int { return &v }

func TestValidateFormatAcceptsWellFormed(t *testing.T) {
	doc := &domain.PuzzleDocument{
		Size: []int{3, 3},
		Cells: []domain.CellRecord{
			{X: 0, Y: 0, Wall: true},
			{X: 0, Y: 1, Down: iptr(4)},
			{X: 1, Y: 0, Right: iptr(3)},
			{X: 1, Y: 1, Value: iptr(1)},
		},
	}
	ok, issues, err := New().ValidateFormat(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, issues)
}

func TestValidateFormatReportsEveryIssue(t *testing.T) {
	doc := &domain.PuzzleDocument{
		Size: []int{3, 3},
		Cells: []domain.CellRecord{
			{X: 5, Y: 0, Wall: true},                          // out of bounds
			{X: 1, Y: 1},                                      // untagged
			{X: 1, Y: 1, Value: iptr(12)},                     // duplicate + range
			{X: 2, Y: 2, Right: iptr(0)},                      // non-positive sum
			{X: 2, Y: 1, Wall: true, Value: iptr(3)},          // wall with value
			{X: 0, Y: 1, Right: iptr(5), Value: iptr(2)},      // clue with value
		},
	}
	ok, issues, err := New().ValidateFormat(context.Background(), doc)
	require.NoError(t, err)
	assert.False(t, ok)
	require.Len(t, issues, 7)

	byIndex := map[int]int{}
	for _, is := range issues {
		byIndex[is.Index]++
	}
	assert.Equal(t, 1, byIndex[0], "bounds issue on record 0")
	assert.Equal(t, 1, byIndex[1], "untagged record 1")
	assert.Equal(t, 2, byIndex[2], "duplicate position and range on record 2")
	assert.Equal(t, 1, byIndex[3])
	assert.Equal(t, 1, byIndex[4])
	assert.Equal(t, 1, byIndex[5])
}

func TestValidateFormatBadSize(t *testing.T) {
	for _, size := range [][]int{nil, {3}, {0, 3}} {
		ok, issues, err := New().ValidateFormat(context.Background(), &domain.PuzzleDocument{Size: size})
		require.NoError(t, err)
		assert.False(t, ok, "size %v", size)
		require.NotEmpty(t, issues)
		assert.Equal(t, -1, issues[0].Index)
	}
}

func TestValidateFormatNilDocument(t *testing.T) {
	ok, issues, err := New().ValidateFormat(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, ok)
	require.Len(t, issues, 1)
}

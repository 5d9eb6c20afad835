package combo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForKnownEntries(t *testing.T) {
	two17 := For(2, 17)
	require.Len(t, two17, 1)
	assert.Equal(t, []int{8, 9}, two17[0].Digits())

	three6 := For(3, 6)
	require.Len(t, three6, 1)
	assert.Equal(t, []int{1, 2, 3}, three6[0].Digits())

	two3 := For(2, 3)
	require.Len(t, two3, 1)
	assert.Equal(t, []int{1, 2}, two3[0].Digits())

	// No two distinct digits sum to 1.
	assert.Empty(t, For(2, 1))
}

func TestForOutOfRange(t *testing.T) {
	assert.Nil(t, For(1, 5))
	assert.Nil(t, For(10, 45))
	assert.Nil(t, For(2, 0))
	assert.Nil(t, For(2, 46))
}

func TestForCoversAllPairs(t *testing.T) {
	// C(9,2) = 36 pairs in total across all sums.
	total := 0
	for s := 1; s <= MaxSum; s++ {
		for _, c := range For(2, s) {
			require.Equal(t, 2, c.Size())
			require.Equal(t, s, c.Sum())
			total++
		}
	}
	assert.Equal(t, 36, total)

	// An entry is empty exactly when no 2-subset reaches the sum.
	for s := 1; s <= MaxSum; s++ {
		if s >= 3 && s <= 17 {
			assert.NotEmpty(t, For(2, s), "sum %d", s)
		} else {
			assert.Empty(t, For(2, s), "sum %d", s)
		}
	}
}

func TestForNineDigitRun(t *testing.T) {
	// The only 9-cell combination uses every digit and sums to 45.
	all := For(9, 45)
	require.Len(t, all, 1)
	assert.Equal(t, AllDigits, all[0])
	assert.Empty(t, For(9, 44))
}

func TestCombinationAccessors(t *testing.T) {
	c := FromDigit(3) | FromDigit(7)
	assert.True(t, c.Has(3))
	assert.True(t, c.Has(7))
	assert.False(t, c.Has(5))
	assert.Equal(t, 2, c.Size())
	assert.Equal(t, 10, c.Sum())

	_, single := c.Single()
	assert.False(t, single)
	d, single := FromDigit(8).Single()
	require.True(t, single)
	assert.Equal(t, 8, d)
}

// Package combo precomputes, for every (run length, target sum) pair, the
// distinct-digit combinations that could fill a Kakuro run. The whole
// universe (lengths 2-9, sums 1-45, at most C(9,4)=126 entries per key) is
// built once at process start, so lookups are read-only and need no
// synchronization.
package combo

import (
	"math/bits"
	"sort"
)

// Combination is a set of distinct digits 1-9, one bit per digit
// (bit d set means digit d is in the set).
type Combination uint16

// AllDigits is the full digit set 1-9.
const AllDigits Combination = 0x3fe

// Run length and sum bounds for which table entries exist.
const (
	MinRunLen = 2
	MaxRunLen = 9
	MaxSum    = 45
)

// FromDigit returns the single-digit set {d}.
func FromDigit(d int) Combination { return 1 << d }

// Has reports whether digit d is in the set.
func (c Combination) Has(d int) bool { return c&(1<<d) != 0 }

// Size is the number of digits in the set.
func (c Combination) Size() int { return bits.OnesCount16(uint16(c)) }

// Sum is the total of all digits in the set.
func (c Combination) Sum() int {
	t := 0
	for d := 1; d <= 9; d++ {
		if c.Has(d) {
			t += d
		}
	}
	return t
}

// Single returns the only digit in the set, when the set is a singleton.
func (c Combination) Single() (int, bool) {
	if c != 0 && c&(c-1) == 0 {
		return bits.TrailingZeros16(uint16(c)), true
	}
	return 0, false
}

// Digits returns the set as an ascending slice.
func (c Combination) Digits() []int {
	ds := make([]int, 0, c.Size())
	for d := 1; d <= 9; d++ {
		if c.Has(d) {
			ds = append(ds, d)
		}
	}
	return ds
}

var table [MaxRunLen + 1][MaxSum + 1][]Combination

func init() {
	// Exhaustive over all 2^9-1 non-empty digit subsets.
	masks := make([]Combination, 0, 1<<9)
	for m := Combination(2); m <= AllDigits; m += 2 {
		masks = append(masks, m)
	}
	// Ascending by smallest digit first, matching the order a hand
	// enumeration of sorted tuples would produce.
	sort.Slice(masks, func(i, j int) bool {
		a, b := masks[i].Digits(), masks[j].Digits()
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
	for _, m := range masks {
		n, s := m.Size(), m.Sum()
		if n >= MinRunLen && n <= MaxRunLen {
			table[n][s] = append(table[n][s], m)
		}
	}
}

// For returns the immutable set of valid digit combinations for a run of
// the given length and target sum. The result is empty (never an error)
// when no subset satisfies both constraints; callers must treat an empty
// entry as "run is unsatisfiable". Callers must not mutate the slice.
func For(length, sum int) []Combination {
	if length < MinRunLen || length > MaxRunLen || sum < 1 || sum > MaxSum {
		return nil
	}
	return table[length][sum]
}

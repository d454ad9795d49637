// Package combinatorics holds the small counting and subset helpers used to
// build the hand rank tables and to drive the 6- and 7-card evaluators.
package combinatorics

import "gonum.org/v1/gonum/stat/combin"

// FiveFromSeven lists every 5-card subset of 7 positions.
var FiveFromSeven = [21][5]int{
	{0, 1, 2, 3, 4}, {0, 1, 2, 3, 5}, {0, 1, 2, 3, 6},
	{0, 1, 2, 4, 5}, {0, 1, 2, 4, 6}, {0, 1, 2, 5, 6},
	{0, 1, 3, 4, 5}, {0, 1, 3, 4, 6}, {0, 1, 3, 5, 6},
	{0, 1, 4, 5, 6}, {0, 2, 3, 4, 5}, {0, 2, 3, 4, 6},
	{0, 2, 3, 5, 6}, {0, 2, 4, 5, 6}, {0, 3, 4, 5, 6},
	{1, 2, 3, 4, 5}, {1, 2, 3, 4, 6}, {1, 2, 3, 5, 6},
	{1, 2, 4, 5, 6}, {1, 3, 4, 5, 6}, {2, 3, 4, 5, 6},
}

// FiveFromSix lists every 5-card subset of 6 positions.
var FiveFromSix = [6][5]int{
	{0, 1, 2, 3, 4}, {0, 1, 2, 3, 5}, {0, 1, 2, 4, 5},
	{0, 1, 3, 4, 5}, {0, 2, 3, 4, 5}, {1, 2, 3, 4, 5},
}

// Binomial returns n choose k, or 0 when k > n.
func Binomial(n, k int) uint64 {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	return uint64(combin.Binomial(n, k))
}

// Combinations returns every k-subset of {0..n-1} as ascending index lists,
// in lexicographic order. k == 0 yields a single empty subset.
func Combinations(n, k int) [][]int {
	switch {
	case k < 0 || n < 0 || k > n:
		return [][]int{}
	case k == 0:
		return [][]int{{}}
	}
	return combin.Combinations(n, k)
}

// IsStraightPattern reports whether ranks (0=Two .. 12=Ace) form five
// consecutive values, counting the wheel A-2-3-4-5. Order does not matter.
func IsStraightPattern(ranks []int) bool {
	if len(ranks) != 5 {
		return false
	}

	var mask uint16
	for _, r := range ranks {
		if r < 0 || r > 12 {
			return false
		}
		mask |= 1 << r
	}

	const wheel = 0x100F
	if mask == wheel {
		return true
	}
	for low := 0; low <= 8; low++ {
		if mask == 0x1F<<low {
			return true
		}
	}
	return false
}

package combinatorics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinomial(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n, k int
		want uint64
	}{
		{5, 0, 1},
		{5, 5, 1},
		{5, 2, 10},
		{13, 5, 1287},
		{13, 2, 78},
		{13, 3, 286},
		{52, 5, 2598960},
		{47, 2, 1081},
		{3, 5, 0},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, Binomial(tt.n, tt.k), "C(%d,%d)", tt.n, tt.k)
	}
}

func TestBinomialSymmetry(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 20; n++ {
		for k := 0; k <= n; k++ {
			require.Equal(t, Binomial(n, k), Binomial(n, n-k), "C(%d,%d)", n, k)
		}
	}
}

func TestCombinations(t *testing.T) {
	t.Parallel()

	t.Run("small", func(t *testing.T) {
		t.Parallel()
		got := Combinations(4, 2)
		want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
		assert.Equal(t, want, got)
	})

	t.Run("k zero", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, [][]int{{}}, Combinations(5, 0))
	})

	t.Run("k greater than n", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, Combinations(3, 4))
	})

	t.Run("count matches binomial", func(t *testing.T) {
		t.Parallel()
		for _, k := range []int{1, 2, 3, 5} {
			combos := Combinations(13, k)
			require.Len(t, combos, int(Binomial(13, k)))
			for _, c := range combos {
				for i := 1; i < len(c); i++ {
					require.Less(t, c[i-1], c[i])
				}
			}
		}
	})
}

func TestIsStraightPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ranks []int
		want  bool
	}{
		{"broadway", []int{12, 11, 10, 9, 8}, true},
		{"wheel", []int{12, 0, 1, 2, 3}, true},
		{"six high", []int{4, 3, 2, 1, 0}, true},
		{"unordered", []int{5, 7, 6, 9, 8}, true},
		{"gap", []int{12, 11, 10, 9, 7}, false},
		{"wrap around", []int{1, 0, 12, 11, 10}, false},
		{"four cards", []int{3, 2, 1, 0}, false},
		{"paired", []int{4, 4, 3, 2, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsStraightPattern(tt.ranks))
		})
	}
}

func TestFiveFromSevenCoversAllSubsets(t *testing.T) {
	t.Parallel()

	want := Combinations(7, 5)
	require.Len(t, want, len(FiveFromSeven))
	for i, combo := range want {
		assert.Equal(t, combo, FiveFromSeven[i][:])
	}

	six := Combinations(6, 5)
	require.Len(t, six, len(FiveFromSix))
	for i, combo := range six {
		assert.Equal(t, combo, FiveFromSix[i][:])
	}
}

package poker

import (
	"slices"
	"sort"
	"sync"

	"github.com/lox/pokereval/internal/combinatorics"
)

// uniqueEntry maps the prime product of a non-flush hand to its strength.
type uniqueEntry struct {
	product  uint32
	strength Strength
}

// HandRankTables holds the lookup tables for 5-card evaluation. Tables are
// immutable after construction and safe to share between goroutines.
type HandRankTables struct {
	flush  [8192]Strength // indexed by 13-bit rank pattern
	unique []uniqueEntry  // sorted by product
}

var defaultTables = sync.OnceValue(NewHandRankTables)

// DefaultHandRankTables returns the process-wide tables, building them on first use.
func DefaultHandRankTables() *HandRankTables {
	return defaultTables()
}

// NewHandRankTables generates every hand class from strongest to weakest,
// assigning consecutive strengths starting at 1.
func NewHandRankTables() *HandRankTables {
	t := &HandRankTables{}
	for i := range t.flush {
		t.flush[i] = WorstStrength
	}
	products := make(map[uint32]Strength, 6175)

	next := BestStrength
	next = t.addStraightFlushes(next)
	next = addFourOfAKind(products, next)
	next = addFullHouses(products, next)
	next = t.addFlushes(next)
	next = addStraights(products, next)
	next = addThreeOfAKind(products, next)
	next = addTwoPair(products, next)
	next = addOnePair(products, next)
	addHighCards(products, next)

	t.unique = make([]uniqueEntry, 0, len(products))
	for product, strength := range products {
		t.unique = append(t.unique, uniqueEntry{product: product, strength: strength})
	}
	slices.SortFunc(t.unique, func(a, b uniqueEntry) int {
		switch {
		case a.product < b.product:
			return -1
		case a.product > b.product:
			return 1
		}
		return 0
	})
	return t
}

// LookupFlush returns the strength of a flush with the given rank pattern,
// or WorstStrength for patterns that are not five distinct ranks.
func (t *HandRankTables) LookupFlush(rankBits uint32) Strength {
	return t.flush[rankBits&0x1FFF]
}

// LookupUnique binary searches the non-flush table by prime product.
func (t *HandRankTables) LookupUnique(product uint32) (Strength, bool) {
	i := sort.Search(len(t.unique), func(i int) bool {
		return t.unique[i].product >= product
	})
	if i < len(t.unique) && t.unique[i].product == product {
		return t.unique[i].strength, true
	}
	return 0, false
}

// UniqueLen returns the number of non-flush entries.
func (t *HandRankTables) UniqueLen() int {
	return len(t.unique)
}

// FlushLen returns the number of populated flush entries.
func (t *HandRankTables) FlushLen() int {
	n := 0
	for _, s := range t.flush {
		if s != WorstStrength {
			n++
		}
	}
	return n
}

var straightFlushPatterns = [10]uint32{
	0x1F00, // A-K-Q-J-T
	0x0F80,
	0x07C0,
	0x03E0,
	0x01F0,
	0x00F8,
	0x007C,
	0x003E,
	0x001F, // 6-5-4-3-2
	0x100F, // 5-4-3-2-A
}

var straightRanks = [10][5]int{
	{12, 11, 10, 9, 8},
	{11, 10, 9, 8, 7},
	{10, 9, 8, 7, 6},
	{9, 8, 7, 6, 5},
	{8, 7, 6, 5, 4},
	{7, 6, 5, 4, 3},
	{6, 5, 4, 3, 2},
	{5, 4, 3, 2, 1},
	{4, 3, 2, 1, 0},
	{12, 3, 2, 1, 0},
}

func (t *HandRankTables) addStraightFlushes(next Strength) Strength {
	for _, pattern := range straightFlushPatterns {
		t.flush[pattern] = next
		next++
	}
	return next
}

func addFourOfAKind(products map[uint32]Strength, next Strength) Strength {
	for quad := 12; quad >= 0; quad-- {
		for kicker := 12; kicker >= 0; kicker-- {
			if kicker == quad {
				continue
			}
			products[pow(primes[quad], 4)*primes[kicker]] = next
			next++
		}
	}
	return next
}

func addFullHouses(products map[uint32]Strength, next Strength) Strength {
	for trips := 12; trips >= 0; trips-- {
		for pair := 12; pair >= 0; pair-- {
			if pair == trips {
				continue
			}
			products[pow(primes[trips], 3)*pow(primes[pair], 2)] = next
			next++
		}
	}
	return next
}

func (t *HandRankTables) addFlushes(next Strength) Strength {
	for _, combo := range descendingCombinations(13, 5) {
		if combinatorics.IsStraightPattern(combo) {
			continue
		}
		var bits uint32
		for _, r := range combo {
			bits |= 1 << r
		}
		t.flush[bits] = next
		next++
	}
	return next
}

func addStraights(products map[uint32]Strength, next Strength) Strength {
	for _, ranks := range straightRanks {
		products[primeProduct(ranks[:])] = next
		next++
	}
	return next
}

func addThreeOfAKind(products map[uint32]Strength, next Strength) Strength {
	kickers := descendingCombinations(13, 2)
	for trips := 12; trips >= 0; trips-- {
		for _, k := range kickers {
			if slices.Contains(k, trips) {
				continue
			}
			products[pow(primes[trips], 3)*primes[k[0]]*primes[k[1]]] = next
			next++
		}
	}
	return next
}

func addTwoPair(products map[uint32]Strength, next Strength) Strength {
	for _, pairs := range descendingCombinations(13, 2) {
		high, low := max(pairs[0], pairs[1]), min(pairs[0], pairs[1])
		for kicker := 12; kicker >= 0; kicker-- {
			if kicker == high || kicker == low {
				continue
			}
			products[pow(primes[high], 2)*pow(primes[low], 2)*primes[kicker]] = next
			next++
		}
	}
	return next
}

func addOnePair(products map[uint32]Strength, next Strength) Strength {
	kickers := descendingCombinations(13, 3)
	for pair := 12; pair >= 0; pair-- {
		for _, k := range kickers {
			if slices.Contains(k, pair) {
				continue
			}
			products[pow(primes[pair], 2)*primeProduct(k)] = next
			next++
		}
	}
	return next
}

func addHighCards(products map[uint32]Strength, next Strength) Strength {
	for _, combo := range descendingCombinations(13, 5) {
		if combinatorics.IsStraightPattern(combo) {
			continue
		}
		products[primeProduct(combo)] = next
		next++
	}
	return next
}

// descendingCombinations returns the k-subsets of ranks ordered from the
// strongest high card down, comparing highest ranks first.
func descendingCombinations(n, k int) [][]int {
	combos := combinatorics.Combinations(n, k)
	slices.SortFunc(combos, func(a, b []int) int {
		for i := len(a) - 1; i >= 0; i-- {
			if a[i] != b[i] {
				return b[i] - a[i]
			}
		}
		return 0
	})
	return combos
}

func primeProduct(ranks []int) uint32 {
	product := uint32(1)
	for _, r := range ranks {
		product *= primes[r]
	}
	return product
}

func pow(base uint32, exp int) uint32 {
	result := uint32(1)
	for range exp {
		result *= base
	}
	return result
}

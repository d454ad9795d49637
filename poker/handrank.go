package poker

// Strength is the absolute value of a 5-card hand. 1 is a royal flush and
// 7462 is 7-5-4-3-2 offsuit; lower values are stronger.
type Strength uint16

const (
	BestStrength  Strength = 1
	WorstStrength Strength = 7462
)

// HandRank enumerates the categories of poker hands ordered from weakest to strongest.
type HandRank uint8

const (
	HighCard HandRank = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

const (
	straightFlushCount = 10
	fourOfAKindCount   = 13 * 12
	fullHouseCount     = 13 * 12
	flushCount         = 1277
	straightCount      = 10
	threeOfAKindCount  = 13 * 66
	twoPairCount       = 78 * 11
	onePairCount       = 13 * 220
	highCardCount      = 1277
)

// Inclusive upper strength for each category, strongest first.
const (
	maxStraightFlush = straightFlushCount
	maxFourOfAKind   = maxStraightFlush + fourOfAKindCount
	maxFullHouse     = maxFourOfAKind + fullHouseCount
	maxFlush         = maxFullHouse + flushCount
	maxStraight      = maxFlush + straightCount
	maxThreeOfAKind  = maxStraight + threeOfAKindCount
	maxTwoPair       = maxThreeOfAKind + twoPairCount
	maxOnePair       = maxTwoPair + onePairCount
	maxHighCard      = maxOnePair + highCardCount
)

var handRankNames = [...]string{
	HighCard:      "High Card",
	OnePair:       "One Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
}

// HandRankFromStrength maps a strength to its category.
func HandRankFromStrength(s Strength) HandRank {
	switch {
	case s <= maxStraightFlush:
		return StraightFlush
	case s <= maxFourOfAKind:
		return FourOfAKind
	case s <= maxFullHouse:
		return FullHouse
	case s <= maxFlush:
		return Flush
	case s <= maxStraight:
		return Straight
	case s <= maxThreeOfAKind:
		return ThreeOfAKind
	case s <= maxTwoPair:
		return TwoPair
	case s <= maxOnePair:
		return OnePair
	default:
		return HighCard
	}
}

// String returns a human-readable category name.
func (r HandRank) String() string {
	if int(r) < len(handRankNames) {
		return handRankNames[r]
	}
	return "Unknown"
}

// Rank returns the category of the strength.
func (s Strength) Rank() HandRank {
	return HandRankFromStrength(s)
}

// Compare returns 1 if s is stronger, -1 if other is stronger, 0 for tie
func (s Strength) Compare(other Strength) int {
	if s < other {
		return 1
	} else if s > other {
		return -1
	}
	return 0
}

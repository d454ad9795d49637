package poker

import "fmt"

// Hand is an evaluated 5-card hand.
type Hand struct {
	cards    [5]Card
	rank     HandRank
	strength Strength
}

// NewHand builds a hand from its cards and strength; the category is derived.
func NewHand(cards [5]Card, strength Strength) Hand {
	return Hand{
		cards:    cards,
		rank:     HandRankFromStrength(strength),
		strength: strength,
	}
}

// Cards returns the five cards that make up the hand.
func (h Hand) Cards() [5]Card { return h.cards }

// Card returns the i-th card of the hand.
func (h Hand) Card(i int) Card { return h.cards[i] }

// Rank returns the hand category.
func (h Hand) Rank() HandRank { return h.rank }

// Strength returns the absolute strength; lower is stronger.
func (h Hand) Strength() Strength { return h.strength }

// Is reports whether the hand belongs to the given category.
func (h Hand) Is(rank HandRank) bool { return h.rank == rank }

// IsRoyalFlush reports whether the hand is A-K-Q-J-T suited, strength 1.
// The predicates below test the hand category.
func (h Hand) IsRoyalFlush() bool    { return h.strength == BestStrength }
func (h Hand) IsStraightFlush() bool { return h.rank == StraightFlush }
func (h Hand) IsFourOfAKind() bool   { return h.rank == FourOfAKind }
func (h Hand) IsFullHouse() bool     { return h.rank == FullHouse }
func (h Hand) IsFlush() bool         { return h.rank == Flush }
func (h Hand) IsStraight() bool      { return h.rank == Straight }
func (h Hand) IsThreeOfAKind() bool  { return h.rank == ThreeOfAKind }
func (h Hand) IsTwoPair() bool       { return h.rank == TwoPair }
func (h Hand) IsOnePair() bool       { return h.rank == OnePair }
func (h Hand) IsHighCard() bool      { return h.rank == HighCard }

// Beats reports whether h is strictly stronger than other.
func (h Hand) Beats(other Hand) bool { return h.strength < other.strength }

// Ties reports whether both hands have equal strength.
func (h Hand) Ties(other Hand) bool { return h.strength == other.strength }

// LosesTo reports whether h is strictly weaker than other.
func (h Hand) LosesTo(other Hand) bool { return h.strength > other.strength }

// Compare returns 1 if h wins, -1 if other wins, 0 for tie
func (h Hand) Compare(other Hand) int {
	return h.strength.Compare(other.strength)
}

// String renders the category and cards, as in "Straight Flush [AsKsQsJsTs]".
func (h Hand) String() string {
	var cards string
	for _, c := range h.cards {
		cards += c.String()
	}
	return fmt.Sprintf("%s [%s]", h.rank, cards)
}

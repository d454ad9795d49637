package poker

import (
	"errors"
	"fmt"
	"math/bits"
)

var ErrInvalidHoleCards = errors.New("hole cards must be exactly 2 cards")

// HoleCards are a player's two private cards.
type HoleCards struct {
	cards [2]Card
}

// NewHoleCards builds hole cards from two cards.
func NewHoleCards(first, second Card) HoleCards {
	return HoleCards{cards: [2]Card{first, second}}
}

// ParseHoleCards parses two distinct cards such as "AsKd".
func ParseHoleCards(s string) (HoleCards, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return HoleCards{}, fmt.Errorf("parse hole cards: %w", err)
	}
	if len(cards) != 2 {
		return HoleCards{}, fmt.Errorf("%w: got %d", ErrInvalidHoleCards, len(cards))
	}
	if cards[0] == cards[1] {
		return HoleCards{}, fmt.Errorf("%w: %s", ErrDuplicateCard, cards[0])
	}
	return NewHoleCards(cards[0], cards[1]), nil
}

// MustParseHoleCards parses hole cards and panics on error (for tests)
func MustParseHoleCards(s string) HoleCards {
	h, err := ParseHoleCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hole cards '%s': %v", s, err))
	}
	return h
}

// First returns the first hole card.
func (h HoleCards) First() Card { return h.cards[0] }

// Second returns the second hole card.
func (h HoleCards) Second() Card { return h.cards[1] }

// Cards returns both hole cards.
func (h HoleCards) Cards() [2]Card { return h.cards }

// IsSuited reports whether both cards share a suit.
func (h HoleCards) IsSuited() bool { return h.cards[0].SameSuit(h.cards[1]) }

// IsPair reports whether the cards form a pocket pair.
func (h HoleCards) IsPair() bool { return h.cards[0].SameRank(h.cards[1]) }

// IsConnected reports whether the gap is 0. A2 and pocket pairs count.
func (h HoleCards) IsConnected() bool { return h.Gap() == 0 }

// Gap returns the number of ranks strictly between the two cards. The Ace
// wraps around to sit below the Two, so A2 has gap 0 and K2 has gap 1.
func (h HoleCards) Gap() int {
	combined := h.cards[0].RankBits() | h.cards[1].RankBits()
	span := (31 - bits.LeadingZeros32(combined)) - bits.TrailingZeros32(combined)
	return max(min(span, 13-span)-1, 0)
}

// CombineWithBoard returns the hole cards followed by a complete board.
func (h HoleCards) CombineWithBoard(board [5]Card) [7]Card {
	return [7]Card{h.cards[0], h.cards[1], board[0], board[1], board[2], board[3], board[4]}
}

// String renders the cards back to back, as in "AsKd".
func (h HoleCards) String() string {
	return h.cards[0].String() + h.cards[1].String()
}

// HoleCardCategory represents the preflop strength category of hole cards
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
)

// Category provides a simple preflop categorization.
// Premium (JJ+, AK), Strong (TT, AQ, AJ), Medium (77-99, suited broadway),
// Weak (22-66, suited cards within two ranks), Trash (everything else).
func (h HoleCards) Category() HoleCardCategory {
	low, high := h.cards[0].Rank(), h.cards[1].Rank()
	if low > high {
		low, high = high, low
	}
	pair := h.IsPair()
	suited := h.IsSuited()

	switch {
	case pair && low >= Jack, low == King && high == Ace:
		return CategoryPremium
	case pair && low == Ten, high == Ace && (low == Queen || low == Jack):
		return CategoryStrong
	case pair && low >= Seven, suited && low >= Ten:
		return CategoryMedium
	case pair, suited && high-low <= 2:
		return CategoryWeak
	default:
		return CategoryTrash
	}
}

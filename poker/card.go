// Package poker implements Texas Hold'em cards, boards and a Cactus Kev style
// hand evaluator backed by precomputed rank tables.
package poker

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Card is a bit-packed playing card:
//
//	xxxbbbbb bbbbbbbb cdhsrrrr pppppppp
//
// p = rank prime, r = rank index (0-12), cdhs = one-hot suit, b = one-hot rank.
type Card uint32

// Rank is a card rank from Two (0) to Ace (12).
type Rank uint8

// Suit is a card suit.
type Suit uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

var primes = [13]uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

var (
	ErrInvalidLength = errors.New("card must be exactly 2 characters")
	ErrInvalidRank   = errors.New("invalid rank")
	ErrInvalidSuit   = errors.New("invalid suit")
	ErrInvalidIndex  = errors.New("card index out of range")
	ErrDuplicateCard = errors.New("duplicate card")
)

func (r Rank) String() string {
	if r > Ace {
		return "?"
	}
	return string(rankChars[r])
}

// Prime returns the prime associated with the rank.
func (r Rank) Prime() uint32 {
	return primes[r]
}

func (s Suit) String() string {
	if s > Spades {
		return "?"
	}
	return string(suitChars[s])
}

// NewCard builds a card from a rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card(primes[rank] | uint32(rank)<<8 | 1<<(uint32(suit)+12) | 1<<(uint32(rank)+16))
}

// CardFromRaw builds a card from raw rank (0-12) and suit (0-3) values.
// It panics when either value is out of range.
func CardFromRaw(rank, suit uint8) Card {
	if rank > uint8(Ace) {
		panic(fmt.Sprintf("poker: rank must be 0-12, got %d", rank))
	}
	if suit > uint8(Spades) {
		panic(fmt.Sprintf("poker: suit must be 0-3, got %d", suit))
	}
	return NewCard(Rank(rank), Suit(suit))
}

// CardFromIndex returns the card for index rank*4+suit.
func CardFromIndex(i int) (Card, error) {
	if i < 0 || i >= 52 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	return NewCard(Rank(i/4), Suit(i%4)), nil
}

// AllCards returns the 52 cards in index order.
func AllCards() [52]Card {
	var cards [52]Card
	for i := range cards {
		cards[i] = NewCard(Rank(i/4), Suit(i%4))
	}
	return cards
}

// Rank returns the card rank.
func (c Card) Rank() Rank {
	return Rank((c >> 8) & 0xF)
}

// Suit returns the card suit.
func (c Card) Suit() Suit {
	return Suit(bits.TrailingZeros32(uint32(c.SuitBits())))
}

// Prime returns the rank prime stored in the low byte.
func (c Card) Prime() uint32 {
	return uint32(c) & 0xFF
}

// RankBits returns the 13-bit one-hot rank mask.
func (c Card) RankBits() uint32 {
	return (uint32(c) >> 16) & 0x1FFF
}

// SuitBits returns the 4-bit one-hot suit mask.
func (c Card) SuitBits() uint32 {
	return (uint32(c) >> 12) & 0xF
}

// Index returns rank*4+suit in the range 0-51.
func (c Card) Index() int {
	return int(c.Rank())*4 + int(c.Suit())
}

// Raw returns the packed representation.
func (c Card) Raw() uint32 {
	return uint32(c)
}

// SameRank reports whether both cards share a rank.
func (c Card) SameRank(other Card) bool {
	return c.RankBits() == other.RankBits()
}

// SameSuit reports whether both cards share a suit.
func (c Card) SameSuit(other Card) bool {
	return c.SuitBits()&other.SuitBits() != 0
}

func (c Card) String() string {
	if c == 0 {
		return "??"
	}
	return c.Rank().String() + c.Suit().String()
}

// ParseRank parses a single rank character. Letters are case-insensitive.
func ParseRank(ch byte) (Rank, error) {
	switch ch {
	case 't':
		ch = 'T'
	case 'j':
		ch = 'J'
	case 'q':
		ch = 'Q'
	case 'k':
		ch = 'K'
	case 'a':
		ch = 'A'
	}
	if i := strings.IndexByte(rankChars, ch); i >= 0 {
		return Rank(i), nil
	}
	return 0, fmt.Errorf("%w %q", ErrInvalidRank, ch)
}

// ParseSuit parses a single suit character, case-insensitive.
func ParseSuit(ch byte) (Suit, error) {
	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}
	if i := strings.IndexByte(suitChars, ch); i >= 0 {
		return Suit(i), nil
	}
	return 0, fmt.Errorf("%w %q", ErrInvalidSuit, ch)
}

// ParseCard parses a two character card such as "As" or "td".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}
	rank, err := ParseRank(s[0])
	if err != nil {
		return 0, err
	}
	suit, err := ParseSuit(s[1])
	if err != nil {
		return 0, err
	}
	return NewCard(rank, suit), nil
}

// ParseCards parses a list of cards. Cards may be concatenated ("AsKd") or
// separated by whitespace ("As Kd").
func ParseCards(s string) ([]Card, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length %d: %w", len(s), ErrInvalidLength)
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("card at position %d: %w", i, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// FormatCards renders cards separated by spaces.
func FormatCards(cards []Card) string {
	var sb strings.Builder
	for i, c := range cards {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

package poker

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrInvalidBoardSize = errors.New("board must have 0, 3, 4 or 5 cards")
	ErrWrongStreet      = errors.New("cannot deal on current street")
	ErrIncompleteBoard  = errors.New("board must be complete")
)

// Street is a stage of community card dealing.
type Street uint8

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "Preflop"
	case Flop:
		return "Flop"
	case Turn:
		return "Turn"
	case River:
		return "River"
	default:
		return "Unknown"
	}
}

// Board holds the community cards.
type Board struct {
	cards  []Card
	street Street
}

// NewBoard builds a board from 0, 3, 4 or 5 distinct cards.
func NewBoard(cards ...Card) (Board, error) {
	var street Street
	switch len(cards) {
	case 0:
		street = Preflop
	case 3:
		street = Flop
	case 4:
		street = Turn
	case 5:
		street = River
	default:
		return Board{}, fmt.Errorf("%w: got %d", ErrInvalidBoardSize, len(cards))
	}

	var seen CardSet
	if dup, ok := seen.addUnique(cards...); !ok {
		return Board{}, fmt.Errorf("%w: %s", ErrDuplicateCard, dup)
	}
	return Board{cards: append([]Card(nil), cards...), street: street}, nil
}

// ParseBoard parses board cards such as "KdQcJs" or "Kd Qc Js 2h".
func ParseBoard(s string) (Board, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Board{}, fmt.Errorf("parse board: %w", err)
	}
	return NewBoard(cards...)
}

// MustParseBoard parses a board and panics on error (for tests)
func MustParseBoard(s string) Board {
	b, err := ParseBoard(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse board '%s': %v", s, err))
	}
	return b
}

// Cards returns the board cards in deal order.
func (b Board) Cards() []Card {
	return slices.Clip(b.cards)
}

func (b Board) Len() int         { return len(b.cards) }
func (b Board) Street() Street   { return b.street }
func (b Board) IsEmpty() bool    { return len(b.cards) == 0 }
func (b Board) IsComplete() bool { return b.street == River }

// Array returns the five board cards once the river has been dealt.
func (b Board) Array() ([5]Card, bool) {
	if !b.IsComplete() {
		return [5]Card{}, false
	}
	return [5]Card(b.cards), true
}

// DealFlop adds three cards to an empty board.
func (b *Board) DealFlop(c1, c2, c3 Card) error {
	if b.street != Preflop {
		return fmt.Errorf("%w: flop on %s", ErrWrongStreet, b.street)
	}
	return b.deal(Flop, c1, c2, c3)
}

// DealTurn adds the fourth card after the flop.
func (b *Board) DealTurn(c Card) error {
	if b.street != Flop {
		return fmt.Errorf("%w: turn on %s", ErrWrongStreet, b.street)
	}
	return b.deal(Turn, c)
}

// DealRiver adds the fifth card after the turn.
func (b *Board) DealRiver(c Card) error {
	if b.street != Turn {
		return fmt.Errorf("%w: river on %s", ErrWrongStreet, b.street)
	}
	return b.deal(River, c)
}

// deal appends into a fresh backing array so copies of the board never
// observe each other's cards.
func (b *Board) deal(street Street, cards ...Card) error {
	seen := NewCardSet(b.cards...)
	if dup, ok := seen.addUnique(cards...); !ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCard, dup)
	}
	b.cards = append(slices.Clip(b.cards), cards...)
	b.street = street
	return nil
}

// Clear resets the board to preflop.
func (b *Board) Clear() {
	b.cards = nil
	b.street = Preflop
}

func (b Board) String() string {
	return "[" + FormatCards(b.cards) + "]"
}

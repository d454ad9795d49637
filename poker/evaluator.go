package poker

import (
	"errors"
	"fmt"

	"github.com/lox/pokereval/internal/combinatorics"
)

var ErrInvalidHandSize = errors.New("hand must contain 5, 6 or 7 cards")

// HandEvaluator scores 5- and 7-card hands. The Fast variants return only the
// strength and never allocate.
type HandEvaluator interface {
	Evaluate5Cards(cards [5]Card) Hand
	Evaluate7Cards(cards [7]Card) Hand
	Evaluate5CardsFast(cards [5]Card) Strength
	Evaluate7CardsFast(cards [7]Card) Strength
}

// Evaluator is a lookup-table HandEvaluator.
type Evaluator struct {
	tables *HandRankTables
}

var _ HandEvaluator = (*Evaluator)(nil)

// NewEvaluator returns an evaluator over the shared default tables.
func NewEvaluator() *Evaluator {
	return &Evaluator{tables: DefaultHandRankTables()}
}

// NewEvaluatorWithTables returns an evaluator over the given tables.
func NewEvaluatorWithTables(tables *HandRankTables) *Evaluator {
	return &Evaluator{tables: tables}
}

// Tables returns the lookup tables backing the evaluator.
func (e *Evaluator) Tables() *HandRankTables {
	return e.tables
}

// Evaluate5CardsFast returns the strength of exactly five distinct cards.
func (e *Evaluator) Evaluate5CardsFast(cards [5]Card) Strength {
	c0, c1, c2, c3, c4 := uint32(cards[0]), uint32(cards[1]), uint32(cards[2]), uint32(cards[3]), uint32(cards[4])

	if c0&c1&c2&c3&c4&0xF000 != 0 {
		return e.tables.LookupFlush((c0 | c1 | c2 | c3 | c4) >> 16)
	}

	product := (c0 & 0xFF) * (c1 & 0xFF) * (c2 & 0xFF) * (c3 & 0xFF) * (c4 & 0xFF)
	strength, ok := e.tables.LookupUnique(product)
	if !ok {
		panic(fmt.Sprintf("poker: no rank for cards %s (product %d)", FormatCards(cards[:]), product))
	}
	return strength
}

// Evaluate5Cards evaluates exactly five cards.
func (e *Evaluator) Evaluate5Cards(cards [5]Card) Hand {
	return NewHand(cards, e.Evaluate5CardsFast(cards))
}

// Evaluate7CardsFast returns the best strength across the 21 five-card subsets.
func (e *Evaluator) Evaluate7CardsFast(cards [7]Card) Strength {
	best := WorstStrength
	for _, idx := range combinatorics.FiveFromSeven {
		s := e.Evaluate5CardsFast([5]Card{cards[idx[0]], cards[idx[1]], cards[idx[2]], cards[idx[3]], cards[idx[4]]})
		if s < best {
			best = s
			if best == BestStrength {
				return best
			}
		}
	}
	return best
}

// Evaluate7Cards returns the best 5-card hand that can be made from seven cards.
func (e *Evaluator) Evaluate7Cards(cards [7]Card) Hand {
	var bestCards [5]Card
	best := WorstStrength + 1
	for _, idx := range combinatorics.FiveFromSeven {
		five := [5]Card{cards[idx[0]], cards[idx[1]], cards[idx[2]], cards[idx[3]], cards[idx[4]]}
		if s := e.Evaluate5CardsFast(five); s < best {
			best, bestCards = s, five
			if best == BestStrength {
				break
			}
		}
	}
	return NewHand(bestCards, best)
}

// EvaluateCards evaluates 5, 6 or 7 cards.
func (e *Evaluator) EvaluateCards(cards []Card) (Hand, error) {
	var seen CardSet
	if dup, ok := seen.addUnique(cards...); !ok {
		return Hand{}, fmt.Errorf("%w: %s", ErrDuplicateCard, dup)
	}

	switch len(cards) {
	case 5:
		return e.Evaluate5Cards([5]Card(cards)), nil
	case 6:
		var bestCards [5]Card
		best := WorstStrength + 1
		for _, idx := range combinatorics.FiveFromSix {
			five := [5]Card{cards[idx[0]], cards[idx[1]], cards[idx[2]], cards[idx[3]], cards[idx[4]]}
			if s := e.Evaluate5CardsFast(five); s < best {
				best, bestCards = s, five
			}
		}
		return NewHand(bestCards, best), nil
	case 7:
		return e.Evaluate7Cards([7]Card(cards)), nil
	default:
		return Hand{}, fmt.Errorf("%w: got %d", ErrInvalidHandSize, len(cards))
	}
}

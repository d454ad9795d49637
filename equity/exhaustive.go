package equity

import (
	"github.com/charmbracelet/log"

	"github.com/lox/pokereval/poker"
)

// MaxExhaustiveOpponents is the largest opponent count Exhaustive enumerates.
const MaxExhaustiveOpponents = 3

// Exhaustive computes exact equity by enumerating every board runout and
// every assignment of opponent hands from the remaining deck.
//
// Supported requests are flop, turn and river boards against 1 to 3
// opponents, and preflop against a single opponent. Anything else yields a
// zero-sample Result; use Supports to tell the two apart.
type Exhaustive struct {
	evaluator poker.HandEvaluator
	logger    *log.Logger
}

var _ Calculator = (*Exhaustive)(nil)

// NewExhaustive returns an exhaustive calculator. Only WithLogger applies.
func NewExhaustive(evaluator poker.HandEvaluator, opts ...Option) *Exhaustive {
	o := applyOptions(opts)
	return &Exhaustive{evaluator: evaluator, logger: o.logger}
}

// Supports reports whether a request can be enumerated.
func (e *Exhaustive) Supports(boardLen, opponents int) bool {
	if opponents < 1 {
		return false
	}
	switch boardLen {
	case 3, 4, 5:
		return opponents <= MaxExhaustiveOpponents
	case 0:
		return opponents == 1
	default:
		return false
	}
}

// Calculate enumerates all outcomes.
func (e *Exhaustive) Calculate(hole poker.HoleCards, board poker.Board, opponents int) Result {
	if !e.Supports(board.Len(), opponents) {
		e.logger.Debug("exhaustive enumeration unsupported",
			"street", board.Street(), "board", board.Len(), "opponents", opponents)
		return NewResult(0, 0, 0, opponents)
	}

	remaining := poker.RemainingCards(deadCards(hole, board)...)
	missing := 5 - board.Len()

	var t tally
	scratch := make([]poker.Strength, len(remaining)*len(remaining))
	e.forEachRunout(remaining, missing, func(runout []poker.Card, live []poker.Card) {
		full := completeBoard(board.Cards(), runout)
		e.settle(hole, full, live, opponents, scratch, &t)
	})
	return t.result(opponents)
}

// CalculateSampled ignores samples and enumerates all outcomes.
func (e *Exhaustive) CalculateSampled(hole poker.HoleCards, board poker.Board, opponents, _ int) Result {
	return e.Calculate(hole, board, opponents)
}

// forEachRunout calls fn for every k-card runout chosen from remaining in
// index order, with the cards left over after the runout.
func (e *Exhaustive) forEachRunout(remaining []poker.Card, k int, fn func(runout, live []poker.Card)) {
	runout := make([]poker.Card, 0, k)
	live := make([]poker.Card, 0, len(remaining))
	var chosen uint64

	var walk func(start int)
	walk = func(start int) {
		if len(runout) == k {
			live = live[:0]
			for i, c := range remaining {
				if chosen&(1<<i) == 0 {
					live = append(live, c)
				}
			}
			fn(runout, live)
			return
		}
		for i := start; i < len(remaining); i++ {
			chosen |= 1 << i
			runout = append(runout, remaining[i])
			walk(i + 1)
			runout = runout[:len(runout)-1]
			chosen &^= 1 << i
		}
	}
	walk(0)
}

// settle counts every ordered assignment of disjoint two-card hands from live
// to the opponents on a complete board.
func (e *Exhaustive) settle(hole poker.HoleCards, board [5]poker.Card, live []poker.Card, opponents int, scratch []poker.Strength, t *tally) {
	hero := e.evaluator.Evaluate7CardsFast(hole.CombineWithBoard(board))

	// Each opponent pair is scored once per board.
	n := len(live)
	strengths := scratch[:n*n]
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			opp := poker.NewHoleCards(live[i], live[j])
			strengths[i*n+j] = e.evaluator.Evaluate7CardsFast(opp.CombineWithBoard(board))
		}
	}

	var assign func(left int, used uint64, best poker.Strength)
	assign = func(left int, used uint64, best poker.Strength) {
		if left == 0 {
			t.record(hero, best)
			return
		}
		for i := 0; i < n; i++ {
			if used&(1<<i) != 0 {
				continue
			}
			for j := i + 1; j < n; j++ {
				if used&(1<<j) != 0 {
					continue
				}
				assign(left-1, used|1<<i|1<<j, min(best, strengths[i*n+j]))
			}
		}
	}
	assign(opponents, 0, poker.WorstStrength+1)
}

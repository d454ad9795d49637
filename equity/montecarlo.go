package equity

import (
	"github.com/charmbracelet/log"

	"github.com/lox/pokereval/internal/randutil"
	"github.com/lox/pokereval/poker"
)

// MonteCarlo estimates equity by dealing random runouts and opponent hands.
// Results are deterministic: the generator is seeded from the hero's cards
// and the board size.
type MonteCarlo struct {
	evaluator poker.HandEvaluator
	samples   int
	logger    *log.Logger
}

var _ Calculator = (*MonteCarlo)(nil)

// NewMonteCarlo returns a Monte Carlo calculator.
func NewMonteCarlo(evaluator poker.HandEvaluator, opts ...Option) *MonteCarlo {
	o := applyOptions(opts)
	return &MonteCarlo{evaluator: evaluator, samples: o.samples, logger: o.logger}
}

// Samples returns the iteration count used by Calculate.
func (m *MonteCarlo) Samples() int {
	return m.samples
}

// Calculate runs the default number of iterations.
func (m *MonteCarlo) Calculate(hole poker.HoleCards, board poker.Board, opponents int) Result {
	return m.CalculateSampled(hole, board, opponents, m.samples)
}

// CalculateSampled runs the given number of iterations.
func (m *MonteCarlo) CalculateSampled(hole poker.HoleCards, board poker.Board, opponents, samples int) Result {
	sim, ok := newSimulation(m.evaluator, hole, board, opponents)
	if !ok {
		m.logger.Debug("not enough cards to simulate", "board", board.Len(), "opponents", opponents)
		return NewResult(0, 0, 0, opponents)
	}

	rng := randutil.NewLCG(Seed(hole, board))
	return sim.run(samples, rng).result(opponents)
}

// Seed derives the deterministic simulation seed for a hand.
func Seed(hole poker.HoleCards, board poker.Board) uint64 {
	return randutil.HashSeed(uint64(hole.First().Index()), uint64(hole.Second().Index()), uint64(board.Len()))
}

// simulation holds the fixed inputs of a Monte Carlo run.
type simulation struct {
	evaluator poker.HandEvaluator
	hole      poker.HoleCards
	board     []poker.Card
	remaining []poker.Card
	opponents int
	missing   int
	draws     int
}

func newSimulation(evaluator poker.HandEvaluator, hole poker.HoleCards, board poker.Board, opponents int) (*simulation, bool) {
	if opponents < 1 || board.Len() > 5 {
		return nil, false
	}
	s := &simulation{
		evaluator: evaluator,
		hole:      hole,
		board:     board.Cards(),
		remaining: poker.RemainingCards(deadCards(hole, board)...),
		opponents: opponents,
		missing:   5 - board.Len(),
	}
	s.draws = s.missing + 2*opponents
	if len(s.remaining) < s.draws {
		return nil, false
	}
	return s, true
}

// run plays iterations, each from a fresh copy of the remaining deck with a
// partial Fisher-Yates shuffle covering only the cards it needs.
func (s *simulation) run(iterations int, rng *randutil.LCG) tally {
	var t tally
	deck := make([]poker.Card, len(s.remaining))

	for range iterations {
		copy(deck, s.remaining)
		for i := 0; i < s.draws; i++ {
			j := i + rng.IntN(len(deck)-i)
			deck[i], deck[j] = deck[j], deck[i]
		}

		full := completeBoard(s.board, deck[:s.missing])
		hero := s.evaluator.Evaluate7CardsFast(s.hole.CombineWithBoard(full))

		lost, tied := false, false
		for opp := 0; opp < s.opponents; opp++ {
			k := s.missing + opp*2
			strength := s.evaluator.Evaluate7CardsFast(poker.NewHoleCards(deck[k], deck[k+1]).CombineWithBoard(full))
			if strength < hero {
				lost = true
				break
			}
			if strength == hero {
				tied = true
			}
		}

		switch {
		case lost:
			t.losses++
		case tied:
			t.ties++
		default:
			t.wins++
		}
	}
	return t
}

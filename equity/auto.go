package equity

import (
	"github.com/lox/pokereval/poker"
)

// Auto uses exact enumeration when it is cheap and falls back to sampling.
type Auto struct {
	exhaustive *Exhaustive
	sampler    Calculator
}

var _ Calculator = (*Auto)(nil)

// NewAuto combines an exhaustive calculator with a sampling fallback.
func NewAuto(exhaustive *Exhaustive, sampler Calculator) *Auto {
	return &Auto{exhaustive: exhaustive, sampler: sampler}
}

// Exact reports whether a request will be enumerated rather than sampled.
func (a *Auto) Exact(boardLen, opponents int) bool {
	if !a.exhaustive.Supports(boardLen, opponents) {
		return false
	}
	switch boardLen {
	case 5:
		return opponents <= 2
	case 3, 4:
		return opponents == 1
	default:
		return false
	}
}

func (a *Auto) Calculate(hole poker.HoleCards, board poker.Board, opponents int) Result {
	if a.Exact(board.Len(), opponents) {
		return a.exhaustive.Calculate(hole, board, opponents)
	}
	return a.sampler.Calculate(hole, board, opponents)
}

func (a *Auto) CalculateSampled(hole poker.HoleCards, board poker.Board, opponents, samples int) Result {
	if a.Exact(board.Len(), opponents) {
		return a.exhaustive.Calculate(hole, board, opponents)
	}
	return a.sampler.CalculateSampled(hole, board, opponents, samples)
}

package poker

import "fmt"

// ShowdownResult lists the players holding the best hand at showdown.
type ShowdownResult struct {
	winners  []int
	strength Strength
	hands    []Hand
}

// Winners returns the indices of the winning players in seat order.
func (r ShowdownResult) Winners() []int { return r.winners }

// Strength returns the winning strength.
func (r ShowdownResult) Strength() Strength { return r.strength }

// IsTie reports whether more than one player shares the pot.
func (r ShowdownResult) IsTie() bool { return len(r.winners) > 1 }

// SingleWinner returns the winner when exactly one player has the best hand.
func (r ShowdownResult) SingleWinner() (int, bool) {
	if len(r.winners) != 1 {
		return 0, false
	}
	return r.winners[0], true
}

// Hand returns the best hand of player i. Hands are only available from
// SolveWithHands.
func (r ShowdownResult) Hand(i int) (Hand, bool) {
	if i < 0 || i >= len(r.hands) {
		return Hand{}, false
	}
	return r.hands[i], true
}

// Showdown determines the winners of a completed hand.
type Showdown struct {
	evaluator HandEvaluator
}

// NewShowdown returns a solver using the given evaluator.
func NewShowdown(evaluator HandEvaluator) *Showdown {
	return &Showdown{evaluator: evaluator}
}

// Evaluator returns the underlying evaluator.
func (s *Showdown) Evaluator() HandEvaluator {
	return s.evaluator
}

// Solve returns the winners among players on a complete board.
func (s *Showdown) Solve(players []HoleCards, board Board) (ShowdownResult, error) {
	cards, ok := board.Array()
	if !ok {
		return ShowdownResult{}, fmt.Errorf("%w: showdown on %s", ErrIncompleteBoard, board.Street())
	}

	result := ShowdownResult{strength: WorstStrength + 1}
	for i, hole := range players {
		strength := s.evaluator.Evaluate7CardsFast(hole.CombineWithBoard(cards))
		result.collect(i, strength)
	}
	return result, nil
}

// SolveWithHands is Solve that also records each player's best 5-card hand.
func (s *Showdown) SolveWithHands(players []HoleCards, board Board) (ShowdownResult, error) {
	cards, ok := board.Array()
	if !ok {
		return ShowdownResult{}, fmt.Errorf("%w: showdown on %s", ErrIncompleteBoard, board.Street())
	}

	result := ShowdownResult{
		strength: WorstStrength + 1,
		hands:    make([]Hand, len(players)),
	}
	for i, hole := range players {
		hand := s.evaluator.Evaluate7Cards(hole.CombineWithBoard(cards))
		result.hands[i] = hand
		result.collect(i, hand.Strength())
	}
	return result, nil
}

func (r *ShowdownResult) collect(player int, strength Strength) {
	switch {
	case strength < r.strength:
		r.strength = strength
		r.winners = append(r.winners[:0], player)
	case strength == r.strength:
		r.winners = append(r.winners, player)
	}
}

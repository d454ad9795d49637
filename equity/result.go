// Package equity estimates a hand's share of the pot against random opponent
// hands, either by enumerating every runout or by Monte Carlo sampling.
package equity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/lox/pokereval/poker"
)

// Result is the outcome of an equity calculation. Rates are fractions in [0, 1].
type Result struct {
	wins, ties, losses uint64
	opponents          int
}

// NewResult builds a result from outcome counts. Ties are split evenly
// between the hero and every opponent when computing equity.
func NewResult(wins, ties, losses uint64, opponents int) Result {
	return Result{wins: wins, ties: ties, losses: losses, opponents: opponents}
}

func (r Result) Wins() uint64   { return r.wins }
func (r Result) Ties() uint64   { return r.ties }
func (r Result) Losses() uint64 { return r.losses }
func (r Result) Opponents() int { return r.opponents }

// Samples returns the number of evaluated outcomes.
func (r Result) Samples() uint64 {
	return r.wins + r.ties + r.losses
}

// IsZero reports whether no outcome was evaluated.
func (r Result) IsZero() bool {
	return r.Samples() == 0
}

// WinRate returns the win rate (0.0 to 1.0)
func (r Result) WinRate() float64 {
	return r.rate(r.wins)
}

// TieRate returns the tie rate (0.0 to 1.0)
func (r Result) TieRate() float64 {
	return r.rate(r.ties)
}

// LoseRate returns the loss rate (0.0 to 1.0)
func (r Result) LoseRate() float64 {
	return r.rate(r.losses)
}

// Equity returns the win rate plus this player's share of ties.
func (r Result) Equity() float64 {
	if r.IsZero() {
		return 0.0
	}
	return r.WinRate() + r.TieRate()/float64(r.opponents+1)
}

func (r Result) EquityPercent() float64 { return r.Equity() * 100 }
func (r Result) WinPercent() float64    { return r.WinRate() * 100 }
func (r Result) TiePercent() float64    { return r.TieRate() * 100 }
func (r Result) LosePercent() float64   { return r.LoseRate() * 100 }

// ConfidenceInterval returns the 95% confidence interval for equity.
func (r Result) ConfidenceInterval() (lower, upper float64) {
	return r.ConfidenceIntervalAt(95)
}

// ConfidenceIntervalAt returns the normal-approximation interval for equity at
// the given confidence level, a percentage in (0, 100).
func (r Result) ConfidenceIntervalAt(level float64) (lower, upper float64) {
	n := float64(r.Samples())
	if n == 0 || level <= 0 || level >= 100 {
		return 0.0, 0.0
	}
	equity := r.Equity()

	// Standard error for binomial proportion
	se := math.Sqrt((equity * (1.0 - equity)) / n)
	margin := zValue(level) * se

	return math.Max(0.0, equity-margin), math.Min(1.0, equity+margin)
}

// zValue returns the two-tailed standard normal quantile for a confidence level.
func zValue(level float64) float64 {
	return distuv.UnitNormal.Quantile((1 + level/100) / 2)
}

// Add merges the counts of other into r.
func (r Result) Add(other Result) Result {
	return Result{
		wins:      r.wins + other.wins,
		ties:      r.ties + other.ties,
		losses:    r.losses + other.losses,
		opponents: r.opponents,
	}
}

func (r Result) String() string {
	return fmt.Sprintf("Equity: %.2f%% (W: %.2f%%, T: %.2f%%, L: %.2f%%) [%d samples]",
		r.EquityPercent(), r.WinPercent(), r.TiePercent(), r.LosePercent(), r.Samples())
}

func (r Result) rate(n uint64) float64 {
	total := r.Samples()
	if total == 0 {
		return 0.0
	}
	return float64(n) / float64(total)
}

// tally accumulates outcomes from the hero's point of view.
type tally struct {
	wins, ties, losses uint64
}

// record classifies hero against the best opponent strength (lower is stronger).
func (t *tally) record(hero, bestOpponent poker.Strength) {
	switch {
	case hero < bestOpponent:
		t.wins++
	case hero == bestOpponent:
		t.ties++
	default:
		t.losses++
	}
}

func (t tally) result(opponents int) Result {
	return NewResult(t.wins, t.ties, t.losses, opponents)
}

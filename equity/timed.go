package equity

import (
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokereval/poker"
)

// Timed wraps a calculator and records how long each calculation takes.
type Timed struct {
	inner  Calculator
	clock  quartz.Clock
	logger *log.Logger
	last   atomic.Int64
}

var _ Calculator = (*Timed)(nil)

// NewTimed decorates inner. A nil clock uses the real clock.
func NewTimed(inner Calculator, clock quartz.Clock, opts ...Option) *Timed {
	if clock == nil {
		clock = quartz.NewReal()
	}
	o := applyOptions(opts)
	return &Timed{inner: inner, clock: clock, logger: o.logger}
}

// LastElapsed returns the duration of the most recent calculation.
func (t *Timed) LastElapsed() time.Duration {
	return time.Duration(t.last.Load())
}

func (t *Timed) Calculate(hole poker.HoleCards, board poker.Board, opponents int) Result {
	start := t.clock.Now()
	result := t.inner.Calculate(hole, board, opponents)
	t.observe(start, hole, board, result)
	return result
}

func (t *Timed) CalculateSampled(hole poker.HoleCards, board poker.Board, opponents, samples int) Result {
	start := t.clock.Now()
	result := t.inner.CalculateSampled(hole, board, opponents, samples)
	t.observe(start, hole, board, result)
	return result
}

func (t *Timed) observe(start time.Time, hole poker.HoleCards, board poker.Board, result Result) {
	elapsed := t.clock.Since(start)
	t.last.Store(int64(elapsed))
	t.logger.Debug("equity calculated",
		"hole", hole,
		"board", board,
		"samples", result.Samples(),
		"equity", result.Equity(),
		"elapsed", elapsed)
}

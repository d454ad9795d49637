package equity

import (
	"io"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/lox/pokereval/poker"
)

// DefaultSamples is the Monte Carlo iteration count used by Calculate.
const DefaultSamples = 10000

// Calculator estimates the equity of hole cards against a number of opponents
// holding random hands. Calculators never fail: requests that cannot be
// computed return a zero-sample Result.
type Calculator interface {
	Calculate(hole poker.HoleCards, board poker.Board, opponents int) Result
	CalculateSampled(hole poker.HoleCards, board poker.Board, opponents, samples int) Result
}

// Option configures a calculator.
type Option func(*options)

type options struct {
	samples int
	workers int
	logger  *log.Logger
}

func defaultOptions() options {
	return options{
		samples: DefaultSamples,
		workers: defaultWorkers(),
		logger:  log.New(io.Discard),
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSamples sets the default number of Monte Carlo iterations.
func WithSamples(samples int) Option {
	return func(o *options) {
		if samples > 0 {
			o.samples = samples
		}
	}
}

// WithWorkers sets the number of goroutines used by Parallel.
func WithWorkers(workers int) Option {
	return func(o *options) {
		if workers > 0 {
			o.workers = workers
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func defaultWorkers() int {
	// Cap at 8 for diminishing returns
	return min(runtime.NumCPU(), 8)
}

// deadCards returns the hero's hole cards followed by the board.
func deadCards(hole poker.HoleCards, board poker.Board) []poker.Card {
	dead := make([]poker.Card, 0, 2+board.Len())
	dead = append(dead, hole.First(), hole.Second())
	return append(dead, board.Cards()...)
}

// completeBoard fills the missing board cards from runout.
func completeBoard(board []poker.Card, runout []poker.Card) [5]poker.Card {
	var full [5]poker.Card
	n := copy(full[:], board)
	copy(full[n:], runout)
	return full
}

package equity

import (
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokereval/internal/randutil"
	"github.com/lox/pokereval/poker"
)

// Parallel is a Monte Carlo calculator that shards iterations across worker
// goroutines. Each worker owns its generator, derived from the hand seed and
// the worker index, so results are reproducible for a fixed worker count.
type Parallel struct {
	evaluator poker.HandEvaluator
	samples   int
	workers   int
	logger    *log.Logger
}

var _ Calculator = (*Parallel)(nil)

// NewParallel returns a sharded Monte Carlo calculator.
func NewParallel(evaluator poker.HandEvaluator, opts ...Option) *Parallel {
	o := applyOptions(opts)
	return &Parallel{
		evaluator: evaluator,
		samples:   o.samples,
		workers:   o.workers,
		logger:    o.logger,
	}
}

// Workers returns the number of worker goroutines.
func (p *Parallel) Workers() int {
	return p.workers
}

// Calculate runs the default number of iterations.
func (p *Parallel) Calculate(hole poker.HoleCards, board poker.Board, opponents int) Result {
	return p.CalculateSampled(hole, board, opponents, p.samples)
}

// CalculateSampled splits samples across the workers and merges their counts.
func (p *Parallel) CalculateSampled(hole poker.HoleCards, board poker.Board, opponents, samples int) Result {
	sim, ok := newSimulation(p.evaluator, hole, board, opponents)
	if !ok {
		p.logger.Debug("not enough cards to simulate", "board", board.Len(), "opponents", opponents)
		return NewResult(0, 0, 0, opponents)
	}

	workers := min(p.workers, max(samples, 1))
	samplesPerWorker := samples / workers
	remainder := samples % workers
	seed := Seed(hole, board)

	var g errgroup.Group
	tallies := make([]tally, workers)
	for w := range workers {
		workerSamples := samplesPerWorker
		if w < remainder {
			workerSamples++ // Distribute remainder samples
		}
		workerSeed := randutil.Mix(seed + uint64(w))

		g.Go(func() error {
			tallies[w] = sim.run(workerSamples, randutil.NewLCG(workerSeed))
			return nil
		})
	}
	_ = g.Wait()

	var total tally
	for _, t := range tallies {
		total.wins += t.wins
		total.ties += t.ties
		total.losses += t.losses
	}

	p.logger.Debug("parallel simulation complete", "workers", workers, "samples", samples)
	return total.result(opponents)
}

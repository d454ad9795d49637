package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/samber/lo"

	"github.com/lox/pokereval/equity"
	"github.com/lox/pokereval/internal/config"
	"github.com/lox/pokereval/poker"
)

// EquityCmd estimates the equity of one hand against random opponents.
type EquityCmd struct {
	Hand      string `arg:"" help:"Hero hole cards (e.g. 'AsKd')"`
	Board     string `short:"b" help:"Community cards: none, flop, turn or river (e.g. 'Td7s8h')"`
	Opponents int    `short:"o" help:"Number of opponents (overrides config)"`
	Strategy  string `short:"s" help:"Equity engine: auto, exhaustive, montecarlo or parallel (overrides config)"`
	Samples   int    `short:"n" help:"Monte Carlo iterations (overrides config)"`
	Workers   int    `short:"w" help:"Worker goroutines for the parallel engine (overrides config)"`

	Confidence float64 `default:"95" help:"Confidence level for the reported interval, in percent"`
}

var (
	errNoOutcomes    = errors.New("no outcomes evaluated")
	errBadConfidence = errors.New("confidence must be between 0 and 100")
)

func (c *EquityCmd) Run(a *app) error {
	settings, err := c.settings(a.cfg)
	if err != nil {
		return err
	}

	hole, err := poker.ParseHoleCards(c.Hand)
	if err != nil {
		return err
	}
	board, err := poker.ParseBoard(c.Board)
	if err != nil {
		return err
	}
	if err := checkDisjoint(hole, board); err != nil {
		return err
	}
	confidence := lo.CoalesceOrEmpty(c.Confidence, 95)
	if confidence <= 0 || confidence >= 100 {
		return fmt.Errorf("%w: got %g", errBadConfidence, confidence)
	}

	evaluator := poker.NewEvaluator()
	calc := equity.NewTimed(newCalculator(evaluator, settings, a.logger), quartz.NewReal(), equity.WithLogger(a.logger))
	result := calc.CalculateSampled(hole, board, settings.Opponents, settings.Samples)
	if result.IsZero() {
		return fmt.Errorf("%w: %s strategy cannot handle %d opponents on the %s",
			errNoOutcomes, settings.Strategy, settings.Opponents, board.Street())
	}

	var made *poker.Hand
	if board.Len() >= 3 {
		h, err := evaluator.EvaluateCards(append([]poker.Card{hole.First(), hole.Second()}, board.Cards()...))
		if err != nil {
			return err
		}
		made = &h
	}

	renderEquity(a, hole, board, settings, result, made, confidence)
	a.logger.Info("equity calculated", "elapsed", calc.LastElapsed(), "samples", result.Samples())
	return nil
}

// settings merges command line overrides into the configured equity settings.
func (c *EquityCmd) settings(cfg *config.Config) (config.EquitySettings, error) {
	merged := *cfg
	if c.Opponents != 0 {
		merged.Equity.Opponents = c.Opponents
	}
	if c.Strategy != "" {
		merged.Equity.Strategy = strings.ToLower(c.Strategy)
	}
	if c.Samples != 0 {
		merged.Equity.Samples = c.Samples
	}
	if c.Workers != 0 {
		merged.Equity.Workers = c.Workers
	}
	if err := merged.Validate(); err != nil {
		return config.EquitySettings{}, err
	}
	return merged.Equity, nil
}

func newCalculator(evaluator poker.HandEvaluator, settings config.EquitySettings, logger *log.Logger) equity.Calculator {
	opts := []equity.Option{
		equity.WithSamples(settings.Samples),
		equity.WithWorkers(settings.Workers),
		equity.WithLogger(logger),
	}
	switch settings.Strategy {
	case config.StrategyExhaustive:
		return equity.NewExhaustive(evaluator, opts...)
	case config.StrategyMonteCarlo:
		return equity.NewMonteCarlo(evaluator, opts...)
	case config.StrategyParallel:
		return equity.NewParallel(evaluator, opts...)
	default:
		return equity.NewAuto(equity.NewExhaustive(evaluator, opts...), equity.NewParallel(evaluator, opts...))
	}
}

func checkDisjoint(hole poker.HoleCards, board poker.Board) error {
	used := poker.NewCardSet(board.Cards()...)
	for _, c := range hole.Cards() {
		if used.Contains(c) {
			return fmt.Errorf("%w: %s is in both hand and board", poker.ErrDuplicateCard, c)
		}
	}
	return nil
}

func renderEquity(a *app, hole poker.HoleCards, board poker.Board, settings config.EquitySettings, result equity.Result, made *poker.Hand, confidence float64) {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("hand"), handStyle.Render(hole.String()))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("category"), categoryStyle.Render(string(hole.Category())))
	fmt.Fprintf(w, "%s\t%s (%s)\n", headerStyle.Render("board"), formatCards(board.Cards()), board.Street())
	if made != nil {
		fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("made"), categoryStyle.Render(formatHand(*made)))
	}
	fmt.Fprintf(w, "%s\t%d\n", headerStyle.Render("opponents"), settings.Opponents)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("equity"), handStyle.Render(percent(result.EquityPercent())))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("win"), winStyle.Render(percent(result.WinPercent())))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("tie"), tieStyle.Render(percent(result.TiePercent())))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("lose"), loseStyle.Render(percent(result.LosePercent())))

	lower, upper := result.ConfidenceIntervalAt(confidence)
	fmt.Fprintf(w, "%s\t%s - %s\n", headerStyle.Render(fmt.Sprintf("%g%% ci", confidence)), percent(lower*100), percent(upper*100))
	fmt.Fprintf(w, "%s\t%d\n", headerStyle.Render("samples"), result.Samples())
	w.Flush()
}

package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/samber/lo"

	"github.com/lox/pokereval/poker"
)

// EvalCmd prints the best five-card hand made from 5 to 7 cards.
type EvalCmd struct {
	Cards string `arg:"" help:"Five to seven cards (e.g. 'AsKsQsJsTs' or 'As Kd 7h 7c 2s Td 9h')"`
}

func (c *EvalCmd) Run(a *app) error {
	cards, err := poker.ParseCards(c.Cards)
	if err != nil {
		return err
	}

	hand, err := poker.NewEvaluator().EvaluateCards(cards)
	if err != nil {
		return err
	}
	a.logger.Debug("evaluated", "cards", poker.FormatCards(cards), "strength", hand.Strength())

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("cards"), formatCards(cards))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("rank"), categoryStyle.Render(hand.Rank().String()))
	fmt.Fprintf(w, "%s\t%d\n", headerStyle.Render("strength"), hand.Strength())
	best := hand.Cards()
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("best"), handStyle.Render(formatCards(best[:])))
	return w.Flush()
}

// ShowdownCmd ranks several players' hole cards on a complete board.
type ShowdownCmd struct {
	Hands []string `arg:"" help:"Hole cards for each player (e.g. 'AsKd' 'QhQc')"`
	Board string   `short:"b" required:"" help:"Complete five-card board (e.g. 'Td7s8h2c3d')"`
}

var errTooFewPlayers = errors.New("showdown needs at least two hands")

func (c *ShowdownCmd) Run(a *app) error {
	if len(c.Hands) < 2 {
		return errTooFewPlayers
	}

	board, err := poker.ParseBoard(c.Board)
	if err != nil {
		return err
	}

	players := make([]poker.HoleCards, 0, len(c.Hands))
	for _, s := range c.Hands {
		hole, err := poker.ParseHoleCards(s)
		if err != nil {
			return fmt.Errorf("hand %q: %w", s, err)
		}
		players = append(players, hole)
	}
	if err := checkShowdownCards(players, board); err != nil {
		return err
	}

	result, err := poker.NewShowdown(poker.NewEvaluator()).SolveWithHands(players, board)
	if err != nil {
		return err
	}
	a.logger.Debug("showdown solved", "players", len(players), "winners", result.Winners(), "strength", result.Strength())

	renderShowdown(a, players, board, result)
	return nil
}

// checkShowdownCards rejects a card dealt to more than one player or to both a player and the board.
func checkShowdownCards(players []poker.HoleCards, board poker.Board) error {
	used := poker.NewCardSet(board.Cards()...)
	for _, hole := range players {
		for _, c := range hole.Cards() {
			if used.Contains(c) {
				return fmt.Errorf("%w: %s dealt twice", poker.ErrDuplicateCard, c)
			}
			used.Add(c)
		}
	}
	return nil
}

func renderShowdown(a *app, players []poker.HoleCards, board poker.Board, result poker.ShowdownResult) {
	fmt.Fprintf(a.out, "%s %s\n\n", headerStyle.Render("board"), formatCards(board.Cards()))

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("player"), headerStyle.Render("hole"), headerStyle.Render("hand"), headerStyle.Render("result"))
	for i, hole := range players {
		hand, _ := result.Hand(i)
		outcome := loseStyle.Render("lose")
		if lo.Contains(result.Winners(), i) {
			outcome = winStyle.Render("win")
			if result.IsTie() {
				outcome = tieStyle.Render("split")
			}
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, handStyle.Render(hole.String()), formatHand(hand), outcome)
	}
	w.Flush()

	winners := lo.Map(result.Winners(), func(i int, _ int) string { return players[i].String() })
	fmt.Fprintf(a.out, "\n%s %v\n", headerStyle.Render("winners"), winners)
}

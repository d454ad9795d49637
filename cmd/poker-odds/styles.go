package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokereval/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	loseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// formatCards renders cards as "As Kd" or "-" when empty.
func formatCards(cards []poker.Card) string {
	if len(cards) == 0 {
		return "-"
	}
	return poker.FormatCards(cards)
}

// formatHand renders the best five cards of a hand.
func formatHand(h poker.Hand) string {
	cards := h.Cards()
	return fmt.Sprintf("%s (%s)", h.Rank(), formatCards(cards[:]))
}

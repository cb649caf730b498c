package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/knaranjo357/icfes/internal/ui/theme"
)

// OptionList renders the four answer choices of a question. Selection and
// answer state live in the exam attempt; this component only draws.
type OptionList struct {
	// Options holds the choice texts in A..D order.
	Options [4]string

	// Cursor is the highlighted row.
	Cursor int

	// Chosen is the recorded answer row, -1 when unanswered.
	Chosen int
}

var optionLabels = [4]string{"A", "B", "C", "D"}

// View renders the option rows.
func (o OptionList) View(width int) string {
	var s string
	for i, text := range o.Options {
		marker := " "
		if i == o.Chosen {
			marker = "●"
		}
		line := fmt.Sprintf(" %s %s)  %s", marker, optionLabels[i], text)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == o.Cursor && i == o.Chosen:
			style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		case i == o.Cursor:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		case i == o.Chosen:
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}

		if width > 4 {
			style = style.Width(width - 4)
		}
		s += style.Render(line) + "\n"
	}
	return s
}

// ReviewRow renders one choice row of an answered question in the results
// detail view: the correct option is green, a wrong user choice is red.
func ReviewRow(label, text string, isCorrect, isUserChoice bool) string {
	marker := "  "
	if isUserChoice {
		marker = "➤ "
	}
	line := fmt.Sprintf(" %s%s)  %s", marker, label, text)

	switch {
	case isCorrect:
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line)
	case isUserChoice:
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line)
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)
}

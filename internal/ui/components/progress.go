package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/knaranjo357/icfes/internal/ui/theme"
)

// ProgressBar tracks position through a fixed-size question set. The fill
// switches to the success color once the last step is reached.
type ProgressBar struct {
	Done      int
	Total     int
	ShowCount bool
	Width     int
}

// View renders the bar. A non-positive Total renders nothing.
func (p ProgressBar) View() string {
	if p.Total <= 0 {
		return ""
	}

	var count string
	if p.ShowCount {
		count = fmt.Sprintf(" %d/%d", p.Done, p.Total)
	}

	barWidth := p.Width - lipgloss.Width(count)
	if barWidth < 4 {
		barWidth = 4
	}

	done := p.Done
	if done > p.Total {
		done = p.Total
	}
	if done < 0 {
		done = 0
	}
	filled := barWidth * done / p.Total

	fill := theme.Primary
	if done == p.Total {
		fill = theme.Success
	}

	bar := lipgloss.NewStyle().
		Background(fill).
		Render(strings.Repeat(" ", filled))
	bar += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", barWidth-filled))

	if p.ShowCount {
		bar += lipgloss.NewStyle().Foreground(theme.TextDim).Render(count)
	}
	return bar
}

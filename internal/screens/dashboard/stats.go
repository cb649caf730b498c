package dashboard

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/knaranjo357/icfes/internal/results"
	"github.com/knaranjo357/icfes/internal/ui/theme"
)

const progressStripLen = 10

func (d *DashboardScreen) View(width, height int) string {
	var sections []string

	greeting := fmt.Sprintf("¡%s!", greetingFor(time.Now().Hour()))
	if label := d.userLabel(); label != "" {
		greeting = fmt.Sprintf("¡%s, %s!", greetingFor(time.Now().Hour()), label)
	}
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(greeting))

	sections = append(sections, d.renderStatsStrip())
	sections = append(sections, d.renderMenu())

	content := strings.Join(sections, "\n\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderStatsStrip shows exam totals and the overall average. While the
// history is loading, or when loading failed, it degrades to a notice.
func (d *DashboardScreen) renderStatsStrip() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2)

	if !d.loaded {
		return box.Render(theme.Hint.Render("Cargando estadísticas..."))
	}
	if d.loadErr != "" {
		return box.Render(lipgloss.NewStyle().Foreground(theme.Error).Render(d.loadErr))
	}
	if len(d.results) == 0 {
		return box.Render(theme.Hint.Render("Aún no tienes exámenes. ¡Empieza tu primera prueba!"))
	}

	average := results.Average(d.results)
	level := results.LevelFor(average)
	fullCount := results.CountFullExams(d.results)

	cells := []string{
		statCell("Exámenes", fmt.Sprintf("%d", len(d.results))),
		statCell("Promedio", fmt.Sprintf("%d", average)),
		statCell("Completos", fmt.Sprintf("%d", fullCount)),
		statCell("Nivel", fmt.Sprintf("%s %s", level.Icon, level.Label)),
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	motivation := theme.Hint.Render(results.MotivationalMessage(average))
	strip := d.renderProgressStrip()

	return box.Render(row + "\n" + strip + "\n" + motivation)
}

func greetingFor(hour int) string {
	switch {
	case hour < 12:
		return "Buenos días"
	case hour < 18:
		return "Buenas tardes"
	}
	return "Buenas noches"
}

func statCell(label, value string) string {
	l := lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
	v := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value)
	return lipgloss.NewStyle().Padding(0, 2).Render(l + "\n" + v)
}

// renderProgressStrip draws a tiny bar per recent result, oldest first.
func (d *DashboardScreen) renderProgressStrip() string {
	recent := results.RecentProgress(d.results, progressStripLen)
	if len(recent) == 0 {
		return ""
	}

	var bars []string
	for _, r := range recent {
		score, ok := results.Score(r)
		if !ok {
			score = 0
		}
		style := lipgloss.NewStyle().Foreground(theme.Error)
		switch {
		case score >= 80:
			style = lipgloss.NewStyle().Foreground(theme.Success)
		case score >= 60:
			style = lipgloss.NewStyle().Foreground(theme.Accent)
		}
		bars = append(bars, style.Render(progressGlyph(score)))
	}

	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Progreso ")
	return label + strings.Join(bars, " ")
}

func progressGlyph(score int) string {
	switch {
	case score >= 80:
		return "█"
	case score >= 60:
		return "▆"
	case score >= 40:
		return "▄"
	}
	return "▂"
}

func (d *DashboardScreen) renderMenu() string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Render(d.menu.View())
}

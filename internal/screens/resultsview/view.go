package resultsview

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/knaranjo357/icfes/internal/api"
	"github.com/knaranjo357/icfes/internal/results"
	"github.com/knaranjo357/icfes/internal/subjects"
	"github.com/knaranjo357/icfes/internal/ui/components"
	"github.com/knaranjo357/icfes/internal/ui/theme"
)

func (r *ResultsScreen) View(width, height int) string {
	if r.mode == modeDetail {
		return r.renderDetail(width, height)
	}
	return r.renderList(width, height)
}

func (r *ResultsScreen) renderList(width, height int) string {
	if !r.loaded {
		return centered(width, height, theme.Hint.Render("Cargando tus resultados..."))
	}
	if r.loadErr != "" {
		return centered(width, height, renderError(r.loadErr))
	}

	var b strings.Builder

	b.WriteString(r.renderFilterBar(width))
	b.WriteString("\n\n")

	rs := r.filtered()
	if len(rs) == 0 {
		b.WriteString(theme.Hint.Render("  No hay resultados para este filtro."))
		return b.String()
	}

	// Summary of the filtered slice.
	average := results.Average(rs)
	level := results.LevelFor(average)
	summary := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("  %d exámenes · promedio %d · mejor %d · %s %s",
			len(rs), average, results.Best(rs), level.Icon, level.Label))
	b.WriteString(summary)
	b.WriteString("\n\n")

	start, end := listWindow(r.cursor, len(rs), maxListRows(height))
	for i := start; i < end; i++ {
		b.WriteString(r.renderListRow(rs[i], i == r.cursor, width))
		b.WriteString("\n")
	}

	return b.String()
}

// maxListRows bounds the visible rows to the content area.
func maxListRows(height int) int {
	rows := height - 8
	if rows < 3 {
		rows = 3
	}
	return rows
}

// listWindow scrolls the visible slice so the cursor stays on screen.
func listWindow(cursor, total, rows int) (int, int) {
	if total <= rows {
		return 0, total
	}
	start := cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > total {
		start = total - rows
	}
	return start, start + rows
}

func (r *ResultsScreen) renderFilterBar(width int) string {
	subjectLabel := "Todas las materias"
	if key := subjectFilters()[r.subject]; key != "" {
		subjectLabel = subjects.DisplayName(key)
	}

	chip := func(label, value string) string {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label+" ") +
			lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(value)
	}

	return "  " + chip("[m]", subjectLabel) + "    " + chip("[t]", r.window.Label())
}

func (r *ResultsScreen) renderListRow(result api.ExamResult, selected bool, width int) string {
	score, scoreOK := results.Score(result)

	scoreText := "—"
	scoreStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if scoreOK {
		scoreText = fmt.Sprintf("%3d", score)
		switch {
		case score >= 80:
			scoreStyle = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		case score >= 60:
			scoreStyle = lipgloss.NewStyle().Foreground(theme.Accent)
		default:
			scoreStyle = lipgloss.NewStyle().Foreground(theme.Error)
		}
	}

	name := subjects.DisplayName(result.Subject)
	if results.IsFullExam(result, len(r.all)) {
		name = "Examen completo"
	}

	when := result.CreatedAt
	if t, ok := results.CreatedAt(result); ok {
		when = t.Format("02/01/2006")
	}

	extra := ""
	if result.TimeTaken != nil && *result.TimeTaken != "" {
		extra = "  ⏱ " + *result.TimeTaken
	}

	marker := "   "
	if selected {
		marker = " ▸ "
	}

	line := fmt.Sprintf("%s%s  %-28s %s%s",
		marker,
		scoreStyle.Render(scoreText),
		name,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(when),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(extra),
	)

	if selected {
		return lipgloss.NewStyle().Bold(true).Render(line)
	}
	return line
}

func (r *ResultsScreen) renderDetail(width, height int) string {
	if r.detailBusy {
		return centered(width, height, theme.Hint.Render("Cargando el detalle..."))
	}
	if r.detailErr != "" {
		return centered(width, height, renderError(r.detailErr))
	}

	ds := r.filteredDetails()

	var b strings.Builder

	correct := len(results.FilterAnswers(r.details, results.AnswersCorrect))
	header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("  Detalle · %d/%d correctas", correct, len(r.details)))
	filterChip := lipgloss.NewStyle().Foreground(theme.TextDim).Render("[f] ") +
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(r.answerFilter.Label())

	pad := width - lipgloss.Width(header) - lipgloss.Width(filterChip) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(header + strings.Repeat(" ", pad) + filterChip)
	b.WriteString("\n\n")

	if len(ds) == 0 {
		if r.answerFilter == results.AnswersIncorrect {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).
				Render("  ¡Sin errores en este examen!") + "\n")
			b.WriteString(theme.Hint.Render("  Presiona [f] para ver todas las respuestas."))
		} else {
			b.WriteString(theme.Hint.Render("  No hay respuestas para este filtro."))
		}
		return b.String()
	}

	d := ds[r.detailIndex]
	textWidth := minInt(width-8, 90)

	position := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Pregunta %d/%d · %s", r.detailIndex+1, len(ds), subjects.DisplayName(d.Subject)))
	b.WriteString(position)
	b.WriteString("\n\n")

	if d.Passage != "" {
		passage := lipgloss.NewStyle().
			Width(textWidth).
			Foreground(theme.TextDim).
			Italic(true).
			Render(d.Passage)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, passage))
		b.WriteString("\n\n")
	}

	prompt := lipgloss.NewStyle().
		Width(textWidth).
		Foreground(theme.Text).
		Bold(true).
		Render(d.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	options := []struct {
		label string
		text  string
	}{
		{"A", d.OptionA},
		{"B", d.OptionB},
		{"C", d.OptionC},
		{"D", d.OptionD},
	}
	var rows []string
	for _, o := range options {
		rows = append(rows, components.ReviewRow(o.label, o.text,
			o.label == d.CorrectOption, o.label == d.UserAnswer))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(rows, "\n")))
	b.WriteString("\n\n")

	if d.Explanation != "" {
		explanation := lipgloss.NewStyle().
			Width(textWidth).
			Foreground(theme.Text).
			Render(d.Explanation)
		label := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("Justificación")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, label+"\n"+explanation))
	}

	return b.String()
}

func renderError(msg string) string {
	return lipgloss.NewStyle().Foreground(theme.Error).Render(msg) +
		"\n\n" +
		theme.Hint.Render("[r] reintentar   [esc] volver")
}

func centered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

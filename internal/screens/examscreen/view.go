package examscreen

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/knaranjo357/icfes/internal/exam"
	"github.com/knaranjo357/icfes/internal/subjects"
	"github.com/knaranjo357/icfes/internal/ui/components"
	"github.com/knaranjo357/icfes/internal/ui/layout"
	"github.com/knaranjo357/icfes/internal/ui/theme"
)

func (e *ExamScreen) View(width, height int) string {
	switch e.attempt.Phase() {
	case exam.PhaseLoading:
		return renderLoading(width, height, e.attempt.Mode)
	case exam.PhaseFailed:
		return renderFailed(width, height, e.attempt.ErrMsg())
	case exam.PhaseConfirmingSubmit:
		return e.renderConfirm(width, height)
	case exam.PhaseSubmitting:
		return renderCentered(width, height, theme.Hint.Render("Enviando tus respuestas..."))
	case exam.PhaseCompleted:
		return e.renderCompleted(width, height)
	}
	return e.renderQuestion(width, height)
}

func renderLoading(width, height int, mode exam.Mode) string {
	msg := "Preparando tu prueba..."
	if mode == exam.ModeFull {
		msg = "Armando el examen completo, esto puede tardar un momento..."
	}
	return renderCentered(width, height, theme.Hint.Render(msg))
}

func renderFailed(width, height int, errMsg string) string {
	content := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("No se pudo cargar el examen") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Render(errMsg) +
		"\n\n" +
		theme.Hint.Render("[r] reintentar   [esc] volver")
	return renderCentered(width, height, content)
}

func (e *ExamScreen) renderConfirm(width, height int) string {
	unanswered := e.attempt.UnansweredCount()

	content := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Tienes %d preguntas sin responder", unanswered)) +
		"\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Las preguntas sin responder se enviarán con la opción A.") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.Success).Render("[Y] Sí, entregar") +
		"\n" +
		lipgloss.NewStyle().Foreground(theme.Primary).Render("[N] No, seguir respondiendo")

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Accent).
		Padding(1, 3).
		Render(content)

	return renderCentered(width, height, box)
}

func (e *ExamScreen) renderCompleted(width, height int) string {
	elapsed := layout.FormatClock(int(e.attempt.Elapsed(e.now).Seconds()))

	content := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
		Render("¡Examen enviado!") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf("Respondiste %d de %d preguntas en %s.",
				e.attempt.AnsweredCount(), e.attempt.Len(), elapsed)) +
		"\n\n" +
		theme.Hint.Render("[v] ver resultados   [enter] volver al inicio")

	return renderCentered(width, height, content)
}

func (e *ExamScreen) renderQuestion(width, height int) string {
	q := e.attempt.Current()
	if q == nil {
		return renderCentered(width, height, theme.Hint.Render("Cargando pregunta..."))
	}

	var b strings.Builder

	// Status line: position, answered count, clock.
	left := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("  Pregunta %d/%d", e.attempt.CurrentIndex()+1, e.attempt.Len()))
	if e.attempt.Mode == exam.ModeFull && q.Subject != "" {
		info := subjects.Lookup(q.Subject)
		badge := lipgloss.NewStyle().Foreground(theme.TextDim)
		if info.Color != nil {
			badge = badge.Foreground(info.Color)
		}
		left += badge.Render("  · " + info.DisplayName)
	}

	clock := layout.FormatClock(int(e.attempt.Elapsed(e.now).Seconds()))
	right := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Respondidas %d/%d   ⏱ %s",
			e.attempt.AnsweredCount(), e.attempt.Len(), clock))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	b.WriteString(line)
	b.WriteString("\n")

	bar := components.ProgressBar{
		Done:  e.attempt.CurrentIndex() + 1,
		Total: e.attempt.Len(),
		Width: width - 4,
	}
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	textWidth := min(width-8, 90)

	// Reading passage, when the question carries one.
	if q.Passage != "" {
		passage := lipgloss.NewStyle().
			Width(textWidth).
			Foreground(theme.TextDim).
			Italic(true).
			Render(q.Passage)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, passage))
		b.WriteString("\n\n")
	}

	prompt := lipgloss.NewStyle().
		Width(textWidth).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	chosen := -1
	if answer, ok := e.attempt.Answer(q.ID); ok {
		for i, o := range exam.Options() {
			if o == answer {
				chosen = i
			}
		}
	}

	list := components.OptionList{
		Options: [4]string{q.OptionA, q.OptionB, q.OptionC, q.OptionD},
		Cursor:  e.cursor,
		Chosen:  chosen,
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list.View(textWidth)))

	// A failed submission leaves the attempt active with a message.
	if errMsg := e.attempt.ErrMsg(); errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(errMsg + " Presiona [s] para reintentar."))
	}

	return b.String()
}

func renderCentered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

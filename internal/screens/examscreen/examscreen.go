package examscreen

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/knaranjo357/icfes/internal/api"
	"github.com/knaranjo357/icfes/internal/auth"
	"github.com/knaranjo357/icfes/internal/exam"
	"github.com/knaranjo357/icfes/internal/router"
	"github.com/knaranjo357/icfes/internal/screen"
	"github.com/knaranjo357/icfes/internal/subjects"
	"github.com/knaranjo357/icfes/internal/ui/layout"
)

// Gateway is the remote surface the exam screen needs.
type Gateway interface {
	QuickExam(ctx context.Context, subject string) ([]api.Question, error)
	FullExam(ctx context.Context) ([]api.Question, error)
	SubmitAnswers(ctx context.Context, token string, answers []api.AnswerPair) error
}

// ExamScreen drives one exam attempt from fetch through submission.
type ExamScreen struct {
	gateway    Gateway
	store      *auth.Store
	resultsFty func() screen.Screen

	attempt *exam.Attempt
	cursor  int // highlighted option row
	now     time.Time
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)
var _ screen.AuthRequirer = (*ExamScreen)(nil)

// New creates an ExamScreen for mode. subject is used in quick mode only.
// resultsFactory builds the results screen offered after submission; nil
// disables the shortcut.
func New(gateway Gateway, store *auth.Store, mode exam.Mode, subject string, resultsFactory func() screen.Screen) *ExamScreen {
	return &ExamScreen{
		gateway:    gateway,
		store:      store,
		resultsFty: resultsFactory,
		attempt:    exam.NewAttempt(mode, subject),
	}
}

func (e *ExamScreen) RequiresAuth() bool {
	return true
}

func (e *ExamScreen) Title() string {
	if e.attempt.Mode == exam.ModeFull {
		return "Examen completo"
	}
	return subjects.DisplayName(e.attempt.Subject)
}

func (e *ExamScreen) Init() tea.Cmd {
	return e.fetchQuestions()
}

func (e *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		return e.handleQuestionsLoaded(msg)
	case submitDoneMsg:
		return e.handleSubmitDone(msg)
	case timerTickMsg:
		return e.handleTimerTick(msg)
	case tea.KeyPressMsg:
		return e.handleKey(msg)
	}
	return e, nil
}

// fetchQuestions loads the attempt's question set asynchronously.
func (e *ExamScreen) fetchQuestions() tea.Cmd {
	gateway := e.gateway
	attemptID := e.attempt.ID
	mode := e.attempt.Mode
	subject := e.attempt.Subject

	return func() tea.Msg {
		ctx := context.Background()
		var questions []api.Question
		var err error
		if mode == exam.ModeFull {
			questions, err = gateway.FullExam(ctx)
		} else {
			questions, err = gateway.QuickExam(ctx, subject)
		}
		return questionsLoadedMsg{attemptID: attemptID, questions: questions, err: err}
	}
}

// submitAnswers sends the completed answer sheet.
func (e *ExamScreen) submitAnswers() tea.Cmd {
	gateway := e.gateway
	attemptID := e.attempt.ID
	token := e.store.Token()
	sheet := e.attempt.AnswerSheet()

	return func() tea.Msg {
		err := gateway.SubmitAnswers(context.Background(), token, sheet)
		return submitDoneMsg{attemptID: attemptID, err: err}
	}
}

func (e *ExamScreen) handleQuestionsLoaded(msg questionsLoadedMsg) (screen.Screen, tea.Cmd) {
	// A fetch started by a retried attempt carries the old ID.
	if msg.attemptID != e.attempt.ID {
		return e, nil
	}

	if msg.err != nil {
		e.attempt.Fail(errText(msg.err))
		return e, nil
	}

	if err := e.attempt.Start(msg.questions, time.Now()); err != nil {
		// Start already moved the attempt to Failed.
		return e, nil
	}

	e.now = time.Now()
	e.syncCursor()
	return e, tickCmd()
}

func (e *ExamScreen) handleSubmitDone(msg submitDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.attemptID != e.attempt.ID {
		return e, nil
	}
	if e.attempt.Phase() != exam.PhaseSubmitting {
		return e, nil
	}

	if msg.err != nil {
		_ = e.attempt.FailSubmit(errText(msg.err))
		return e, nil
	}

	_ = e.attempt.Complete()
	return e, nil
}

func (e *ExamScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if !e.attempt.TimerRunning() {
		return e, nil
	}
	e.now = time.Time(msg)
	return e, tickCmd()
}

func (e *ExamScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch e.attempt.Phase() {
	case exam.PhaseLoading:
		if key == "esc" {
			return e, popCmd()
		}
		return e, nil

	case exam.PhaseFailed:
		switch key {
		case "r":
			return e.retry()
		case "esc", "q":
			return e, popCmd()
		}
		return e, nil

	case exam.PhaseConfirmingSubmit:
		switch key {
		case "y", "Y", "enter":
			_ = e.attempt.ConfirmSubmit()
			return e, e.submitAnswers()
		case "n", "N", "esc":
			_ = e.attempt.CancelSubmit()
			return e, nil
		}
		return e, nil

	case exam.PhaseSubmitting:
		return e, nil

	case exam.PhaseCompleted:
		switch key {
		case "v":
			if e.resultsFty != nil {
				s := e.resultsFty()
				return e, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: s}
				}
			}
			return e, nil
		case "enter", "esc", "q":
			return e, popCmd()
		}
		return e, nil
	}

	// PhaseActive.
	switch key {
	case "esc":
		return e, popCmd()
	case "up", "k":
		if e.cursor > 0 {
			e.cursor--
		}
		return e, nil
	case "down", "j":
		if e.cursor < len(exam.Options())-1 {
			e.cursor++
		}
		return e, nil
	case "enter":
		e.selectCursor()
		return e, nil
	case "1", "a":
		return e.selectOption(0)
	case "2", "b":
		return e.selectOption(1)
	case "3", "c":
		return e.selectOption(2)
	case "4", "d":
		return e.selectOption(3)
	case "left", "h":
		e.attempt.Prev()
		e.syncCursor()
		return e, nil
	case "right", "l":
		e.attempt.Next()
		e.syncCursor()
		return e, nil
	case "s":
		_, err := e.attempt.RequestSubmit()
		if err == nil && e.attempt.Phase() == exam.PhaseSubmitting {
			return e, e.submitAnswers()
		}
		return e, nil
	}

	return e, nil
}

// retry abandons the failed attempt and starts a fresh one. The old
// attempt's ID keeps any in-flight result from landing on the new one.
func (e *ExamScreen) retry() (screen.Screen, tea.Cmd) {
	e.attempt = exam.NewAttempt(e.attempt.Mode, e.attempt.Subject)
	e.cursor = 0
	return e, e.fetchQuestions()
}

func (e *ExamScreen) selectOption(row int) (screen.Screen, tea.Cmd) {
	e.cursor = row
	e.selectCursor()
	return e, nil
}

// selectCursor records the highlighted option as the answer for the
// displayed question.
func (e *ExamScreen) selectCursor() {
	q := e.attempt.Current()
	if q == nil {
		return
	}
	options := exam.Options()
	if e.cursor < 0 || e.cursor >= len(options) {
		return
	}
	_ = e.attempt.SelectAnswer(q.ID, options[e.cursor])
}

// syncCursor points the cursor at the recorded answer of the displayed
// question, or the first row when unanswered.
func (e *ExamScreen) syncCursor() {
	e.cursor = 0
	q := e.attempt.Current()
	if q == nil {
		return
	}
	answer, ok := e.attempt.Answer(q.ID)
	if !ok {
		return
	}
	for i, o := range exam.Options() {
		if o == answer {
			e.cursor = i
			return
		}
	}
}

func (e *ExamScreen) KeyHints() []layout.KeyHint {
	switch e.attempt.Phase() {
	case exam.PhaseConfirmingSubmit:
		return []layout.KeyHint{
			{Key: "y", Description: "enviar"},
			{Key: "n", Description: "seguir respondiendo"},
		}
	case exam.PhaseFailed:
		return []layout.KeyHint{
			{Key: "r", Description: "reintentar"},
			{Key: "esc", Description: "volver"},
		}
	case exam.PhaseCompleted:
		return []layout.KeyHint{
			{Key: "v", Description: "ver resultados"},
			{Key: "enter", Description: "volver al inicio"},
		}
	}
	return []layout.KeyHint{
		{Key: "a-d", Description: "responder"},
		{Key: "←/→", Description: "cambiar pregunta"},
		{Key: "s", Description: "entregar"},
		{Key: "esc", Description: "abandonar"},
	}
}

// errText maps an error to the user-facing message shown on screen.
func errText(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if apiErr.IsNetwork() {
			return "Sin conexión. Revisa tu internet e inténtalo de nuevo."
		}
		return apiErr.Message
	}
	return err.Error()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func popCmd() tea.Cmd {
	return func() tea.Msg {
		return router.PopScreenMsg{}
	}
}

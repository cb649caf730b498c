package exam

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/knaranjo357/icfes/internal/api"
)

// Mode distinguishes a single-subject quick exam from the assembled
// full exam.
type Mode int

const (
	ModeQuick Mode = iota
	ModeFull
)

// Phase is the lifecycle state of an attempt.
type Phase int

const (
	PhaseLoading          Phase = iota // questions being fetched
	PhaseActive                       // answering
	PhaseConfirmingSubmit             // submit requested with unanswered questions
	PhaseSubmitting                   // answer sheet in flight
	PhaseCompleted                    // submitted successfully
	PhaseFailed                       // question fetch failed; attempt is dead
)

// ErrNoQuestions is returned when a fetch succeeds but yields an empty set.
// An empty attempt has no valid current index, so it is terminal rather
// than navigable.
var ErrNoQuestions = errors.New("el examen no tiene preguntas")

// Attempt is the state machine for a single exam attempt. It owns its
// question set for the attempt's duration and is discarded when the screen
// that created it goes away. It performs no I/O; the owning screen drives
// the gateway and feeds results back in.
type Attempt struct {
	// ID distinguishes this attempt so results of async work started by an
	// abandoned attempt can be discarded.
	ID string

	Mode    Mode
	Subject string // quick mode only

	questions []api.Question
	current   int
	answers   map[int]Option

	startTime time.Time
	phase     Phase
	errMsg    string
}

// NewAttempt creates an attempt in PhaseLoading.
func NewAttempt(mode Mode, subject string) *Attempt {
	return &Attempt{
		ID:      uuid.New().String(),
		Mode:    mode,
		Subject: subject,
		answers: make(map[int]Option),
		phase:   PhaseLoading,
	}
}

// Start installs the fetched question set and activates the attempt.
// An empty set fails the attempt with ErrNoQuestions.
func (a *Attempt) Start(questions []api.Question, now time.Time) error {
	if a.phase != PhaseLoading {
		return errors.New("attempt already started")
	}
	if len(questions) == 0 {
		a.phase = PhaseFailed
		a.errMsg = ErrNoQuestions.Error()
		return ErrNoQuestions
	}
	a.questions = questions
	a.current = 0
	a.startTime = now
	a.phase = PhaseActive
	return nil
}

// Fail marks a loading attempt as dead after a fetch failure. The caller
// may retry only by creating a new attempt.
func (a *Attempt) Fail(msg string) {
	a.phase = PhaseFailed
	a.errMsg = msg
}

// Phase returns the current lifecycle phase.
func (a *Attempt) Phase() Phase { return a.phase }

// ErrMsg returns the user-facing message for a failed attempt or a failed
// submission.
func (a *Attempt) ErrMsg() string { return a.errMsg }

// Questions returns the attempt's question set.
func (a *Attempt) Questions() []api.Question { return a.questions }

// Len returns the number of questions.
func (a *Attempt) Len() int { return len(a.questions) }

// CurrentIndex returns the position of the displayed question.
func (a *Attempt) CurrentIndex() int { return a.current }

// Current returns the displayed question, or nil before Start.
func (a *Attempt) Current() *api.Question {
	if a.current < 0 || a.current >= len(a.questions) {
		return nil
	}
	return &a.questions[a.current]
}

// Answer returns the recorded answer for a question, if any.
func (a *Attempt) Answer(questionID int) (Option, bool) {
	o, ok := a.answers[questionID]
	return o, ok
}

// AnsweredCount returns how many questions have a recorded answer.
func (a *Attempt) AnsweredCount() int { return len(a.answers) }

// UnansweredCount returns how many questions lack an answer.
func (a *Attempt) UnansweredCount() int { return len(a.questions) - len(a.answers) }

// SelectAnswer records an answer for a question. Valid only while Active;
// re-selecting the same option is a no-op in effect, and a different option
// overwrites the previous one. Options outside the enumerated set and ids
// outside the question set are rejected.
func (a *Attempt) SelectAnswer(questionID int, option Option) error {
	if a.phase != PhaseActive {
		return errors.New("attempt is not active")
	}
	if _, err := ParseOption(string(option)); err != nil {
		return err
	}
	if !a.hasQuestion(questionID) {
		return errors.New("unknown question id")
	}
	a.answers[questionID] = option
	return nil
}

// Next moves to the following question. Moving past the last question is
// a no-op.
func (a *Attempt) Next() {
	if a.current < len(a.questions)-1 {
		a.current++
	}
}

// Prev moves to the preceding question. Moving before the first question
// is a no-op.
func (a *Attempt) Prev() {
	if a.current > 0 {
		a.current--
	}
}

// Goto jumps to the question at index, clamped to the valid range.
func (a *Attempt) Goto(index int) {
	if len(a.questions) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > len(a.questions)-1 {
		index = len(a.questions) - 1
	}
	a.current = index
}

// RequestSubmit begins the submit flow. With unanswered questions the
// attempt enters PhaseConfirmingSubmit and waits for an explicit
// ConfirmSubmit or CancelSubmit; otherwise it goes straight to
// PhaseSubmitting.
func (a *Attempt) RequestSubmit() (Phase, error) {
	if a.phase != PhaseActive {
		return a.phase, errors.New("attempt is not active")
	}
	if a.UnansweredCount() > 0 {
		a.phase = PhaseConfirmingSubmit
	} else {
		a.phase = PhaseSubmitting
	}
	return a.phase, nil
}

// ConfirmSubmit resolves the confirmation dialog affirmatively.
func (a *Attempt) ConfirmSubmit() error {
	if a.phase != PhaseConfirmingSubmit {
		return errors.New("no submit confirmation pending")
	}
	a.phase = PhaseSubmitting
	return nil
}

// CancelSubmit resolves the confirmation dialog negatively, returning to
// Active with all recorded answers intact.
func (a *Attempt) CancelSubmit() error {
	if a.phase != PhaseConfirmingSubmit {
		return errors.New("no submit confirmation pending")
	}
	a.phase = PhaseActive
	return nil
}

// AnswerSheet builds the ordered submission payload: exactly one pair per
// question, in question order, with unanswered questions defaulted to
// option A.
func (a *Attempt) AnswerSheet() []api.AnswerPair {
	sheet := make([]api.AnswerPair, 0, len(a.questions))
	for _, q := range a.questions {
		option, ok := a.answers[q.ID]
		if !ok {
			option = DefaultOption
		}
		sheet = append(sheet, api.AnswerPair{QuestionID: q.ID, Option: string(option)})
	}
	return sheet
}

// Complete marks a successful submission.
func (a *Attempt) Complete() error {
	if a.phase != PhaseSubmitting {
		return errors.New("attempt is not submitting")
	}
	a.phase = PhaseCompleted
	a.errMsg = ""
	return nil
}

// FailSubmit returns a failed submission to Active so the user can retry.
// Recorded answers are untouched.
func (a *Attempt) FailSubmit(msg string) error {
	if a.phase != PhaseSubmitting {
		return errors.New("attempt is not submitting")
	}
	a.phase = PhaseActive
	a.errMsg = msg
	return nil
}

// Elapsed returns the time since the attempt became active. It is a pure
// derivation; the owning screen re-reads it on each timer tick and stops
// ticking once the attempt completes.
func (a *Attempt) Elapsed(now time.Time) time.Duration {
	if a.startTime.IsZero() {
		return 0
	}
	return now.Sub(a.startTime)
}

// TimerRunning reports whether the elapsed clock should keep advancing.
func (a *Attempt) TimerRunning() bool {
	switch a.phase {
	case PhaseActive, PhaseConfirmingSubmit, PhaseSubmitting:
		return true
	}
	return false
}

func (a *Attempt) hasQuestion(id int) bool {
	for i := range a.questions {
		if a.questions[i].ID == id {
			return true
		}
	}
	return false
}

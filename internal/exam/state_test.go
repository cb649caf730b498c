package exam

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/knaranjo357/icfes/internal/api"
)

func testQuestions(n int) []api.Question {
	qs := make([]api.Question, n)
	for i := range qs {
		qs[i] = api.Question{
			ID:            i + 1,
			Prompt:        fmt.Sprintf("pregunta %d", i+1),
			OptionA:       "a",
			OptionB:       "b",
			OptionC:       "c",
			OptionD:       "d",
			CorrectOption: "A",
			Subject:       "matematicas",
		}
	}
	return qs
}

func activeAttempt(t *testing.T, n int) *Attempt {
	t.Helper()
	a := NewAttempt(ModeQuick, "matematicas")
	if err := a.Start(testQuestions(n), time.Now()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return a
}

func TestStart_EmptySetIsTerminal(t *testing.T) {
	a := NewAttempt(ModeQuick, "matematicas")
	err := a.Start(nil, time.Now())
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("Start(empty) err = %v, want ErrNoQuestions", err)
	}
	if a.Phase() != PhaseFailed {
		t.Errorf("Phase = %v, want PhaseFailed", a.Phase())
	}
}

func TestSelectAnswer_Idempotent(t *testing.T) {
	a := activeAttempt(t, 3)

	if err := a.SelectAnswer(1, OptionB); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}
	if err := a.SelectAnswer(1, OptionB); err != nil {
		t.Fatalf("repeat SelectAnswer: %v", err)
	}

	got, ok := a.Answer(1)
	if !ok || got != OptionB {
		t.Errorf("Answer(1) = %v, %v; want B, true", got, ok)
	}
	if a.AnsweredCount() != 1 {
		t.Errorf("AnsweredCount = %d, want 1", a.AnsweredCount())
	}
}

func TestSelectAnswer_Overwrites(t *testing.T) {
	a := activeAttempt(t, 3)
	a.SelectAnswer(1, OptionB)
	a.SelectAnswer(1, OptionD)

	got, _ := a.Answer(1)
	if got != OptionD {
		t.Errorf("Answer(1) = %v, want D", got)
	}
}

func TestSelectAnswer_RejectsOutOfSet(t *testing.T) {
	a := activeAttempt(t, 3)
	if err := a.SelectAnswer(1, Option("E")); err == nil {
		t.Error("SelectAnswer(E) = nil, want error")
	}
	if err := a.SelectAnswer(99, OptionA); err == nil {
		t.Error("SelectAnswer(unknown id) = nil, want error")
	}
	if a.AnsweredCount() != 0 {
		t.Errorf("AnsweredCount = %d, want 0", a.AnsweredCount())
	}
}

func TestSelectAnswer_OnlyWhileActive(t *testing.T) {
	a := activeAttempt(t, 1)
	a.SelectAnswer(1, OptionA)
	a.RequestSubmit()

	if err := a.SelectAnswer(1, OptionB); err == nil {
		t.Error("SelectAnswer while submitting = nil, want error")
	}
}

func TestNavigation_ClampsAtBounds(t *testing.T) {
	a := activeAttempt(t, 3)

	a.Prev()
	if a.CurrentIndex() != 0 {
		t.Errorf("Prev at 0: index = %d, want 0", a.CurrentIndex())
	}

	a.Next()
	a.Next()
	a.Next() // past the end, no-op
	if a.CurrentIndex() != 2 {
		t.Errorf("Next at last: index = %d, want 2", a.CurrentIndex())
	}
}

func TestGoto_Clamps(t *testing.T) {
	a := activeAttempt(t, 5)
	a.Goto(-3)
	if a.CurrentIndex() != 0 {
		t.Errorf("Goto(-3): index = %d, want 0", a.CurrentIndex())
	}
	a.Goto(42)
	if a.CurrentIndex() != 4 {
		t.Errorf("Goto(42): index = %d, want 4", a.CurrentIndex())
	}
}

func TestRequestSubmit_ConfirmsWhenUnanswered(t *testing.T) {
	a := activeAttempt(t, 5)
	a.SelectAnswer(1, OptionA)
	a.SelectAnswer(2, OptionB)
	a.SelectAnswer(4, OptionC)

	phase, err := a.RequestSubmit()
	if err != nil {
		t.Fatalf("RequestSubmit: %v", err)
	}
	if phase != PhaseConfirmingSubmit {
		t.Fatalf("phase = %v, want PhaseConfirmingSubmit", phase)
	}

	// Cancel returns to Active with answers intact.
	if err := a.CancelSubmit(); err != nil {
		t.Fatalf("CancelSubmit: %v", err)
	}
	if a.Phase() != PhaseActive {
		t.Errorf("phase after cancel = %v, want PhaseActive", a.Phase())
	}
	if a.AnsweredCount() != 3 {
		t.Errorf("AnsweredCount after cancel = %d, want 3", a.AnsweredCount())
	}
}

func TestRequestSubmit_SkipsConfirmWhenComplete(t *testing.T) {
	a := activeAttempt(t, 2)
	a.SelectAnswer(1, OptionA)
	a.SelectAnswer(2, OptionB)

	phase, err := a.RequestSubmit()
	if err != nil {
		t.Fatalf("RequestSubmit: %v", err)
	}
	if phase != PhaseSubmitting {
		t.Errorf("phase = %v, want PhaseSubmitting", phase)
	}
}

func TestAnswerSheet_DefaultsUnansweredToA(t *testing.T) {
	// The scenario from the submission contract: 5 questions, 1, 2 and 4
	// answered, 3 and 5 defaulted.
	a := activeAttempt(t, 5)
	a.SelectAnswer(1, OptionB)
	a.SelectAnswer(2, OptionC)
	a.SelectAnswer(4, OptionD)

	sheet := a.AnswerSheet()
	if len(sheet) != 5 {
		t.Fatalf("sheet length = %d, want 5", len(sheet))
	}

	want := []api.AnswerPair{
		{QuestionID: 1, Option: "B"},
		{QuestionID: 2, Option: "C"},
		{QuestionID: 3, Option: "A"},
		{QuestionID: 4, Option: "D"},
		{QuestionID: 5, Option: "A"},
	}
	for i, w := range want {
		if sheet[i] != w {
			t.Errorf("sheet[%d] = %+v, want %+v", i, sheet[i], w)
		}
	}
}

func TestSubmitFailure_ReturnsToActive(t *testing.T) {
	a := activeAttempt(t, 1)
	a.SelectAnswer(1, OptionC)
	a.RequestSubmit()

	if err := a.FailSubmit("error al enviar las respuestas"); err != nil {
		t.Fatalf("FailSubmit: %v", err)
	}
	if a.Phase() != PhaseActive {
		t.Errorf("phase = %v, want PhaseActive", a.Phase())
	}
	if a.ErrMsg() == "" {
		t.Error("ErrMsg empty after failed submit")
	}

	// Answers survive so the user can resubmit.
	got, _ := a.Answer(1)
	if got != OptionC {
		t.Errorf("Answer(1) = %v after failed submit, want C", got)
	}

	// Resubmission is allowed.
	phase, err := a.RequestSubmit()
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if phase != PhaseSubmitting {
		t.Errorf("resubmit phase = %v, want PhaseSubmitting", phase)
	}
}

func TestComplete_StopsTimer(t *testing.T) {
	a := activeAttempt(t, 1)
	a.SelectAnswer(1, OptionA)
	a.RequestSubmit()

	if !a.TimerRunning() {
		t.Error("TimerRunning = false while submitting, want true")
	}
	if err := a.Complete(); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if a.Phase() != PhaseCompleted {
		t.Errorf("phase = %v, want PhaseCompleted", a.Phase())
	}
	if a.TimerRunning() {
		t.Error("TimerRunning = true after completion, want false")
	}
}

func TestElapsed_DerivedFromStart(t *testing.T) {
	a := NewAttempt(ModeFull, "")
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	if err := a.Start(testQuestions(1), start); err != nil {
		t.Fatal(err)
	}

	got := a.Elapsed(start.Add(95 * time.Second))
	if got != 95*time.Second {
		t.Errorf("Elapsed = %v, want 95s", got)
	}
}

func TestAttemptIDs_Distinct(t *testing.T) {
	a := NewAttempt(ModeQuick, "lectura")
	b := NewAttempt(ModeQuick, "lectura")
	if a.ID == b.ID {
		t.Error("two attempts share an ID")
	}
}

package examscreen

import (
	"time"

	"github.com/knaranjo357/icfes/internal/api"
)

// questionsLoadedMsg is sent when the question fetch finishes. attemptID
// ties the result to the attempt that started it so a retried or
// abandoned attempt's fetch is discarded.
type questionsLoadedMsg struct {
	attemptID string
	questions []api.Question
	err       error
}

// submitDoneMsg is sent when the answer-sheet submission finishes.
type submitDoneMsg struct {
	attemptID string
	err       error
}

// timerTickMsg is sent every second while the attempt clock runs.
type timerTickMsg time.Time

package exam

import (
	"fmt"

	"github.com/knaranjo357/icfes/internal/api"
)

// Option is one of the four answer choices. Options are an explicit
// enumerated set; option text is resolved through OptionText rather than
// any dynamic field lookup.
type Option string

const (
	OptionA Option = "A"
	OptionB Option = "B"
	OptionC Option = "C"
	OptionD Option = "D"
)

// DefaultOption is submitted for questions the user left unanswered.
const DefaultOption = OptionA

// Options lists the choices in display order.
func Options() []Option {
	return []Option{OptionA, OptionB, OptionC, OptionD}
}

// ParseOption validates a raw option string.
func ParseOption(s string) (Option, error) {
	switch Option(s) {
	case OptionA, OptionB, OptionC, OptionD:
		return Option(s), nil
	}
	return "", fmt.Errorf("invalid option %q", s)
}

// OptionText returns the text of the given choice on a question.
func OptionText(q *api.Question, o Option) string {
	switch o {
	case OptionA:
		return q.OptionA
	case OptionB:
		return q.OptionB
	case OptionC:
		return q.OptionC
	case OptionD:
		return q.OptionD
	}
	return ""
}

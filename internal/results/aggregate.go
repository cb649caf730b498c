// Package results derives statistics from the exam-result history the
// backend returns. Every function here is pure: filters and aggregates are
// recomputed from the raw list on each call, nothing is cached.
package results

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/knaranjo357/icfes/internal/api"
)

// TimeWindow restricts results to a trailing period.
type TimeWindow int

const (
	WindowAll TimeWindow = iota
	WindowWeek
	WindowMonth
	WindowYear
)

// Label returns the Spanish display label for the window.
func (w TimeWindow) Label() string {
	switch w {
	case WindowWeek:
		return "Última semana"
	case WindowMonth:
		return "Último mes"
	case WindowYear:
		return "Último año"
	}
	return "Todo el tiempo"
}

// cutoff returns the inclusive lower bound for the window, or zero time
// for WindowAll.
func (w TimeWindow) cutoff(now time.Time) time.Time {
	switch w {
	case WindowWeek:
		return now.AddDate(0, 0, -7)
	case WindowMonth:
		return now.AddDate(0, -1, 0)
	case WindowYear:
		return now.AddDate(-1, 0, 0)
	}
	return time.Time{}
}

// Score parses a result's score string. Unparseable scores return ok=false
// and are excluded from aggregation.
func Score(r api.ExamResult) (int, bool) {
	n, err := strconv.Atoi(r.Score)
	if err != nil {
		return 0, false
	}
	return n, true
}

// CreatedAt parses a result's creation timestamp. The backend emits
// RFC 3339; rows with unparseable dates never match a bounded window.
func CreatedAt(r api.ExamResult) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FilterWindow returns the results at or after the window's lower bound.
// WindowAll passes everything through. The subject and time filters are
// both row-wise, so their application order does not matter.
func FilterWindow(rs []api.ExamResult, w TimeWindow, now time.Time) []api.ExamResult {
	if w == WindowAll {
		return rs
	}
	cut := w.cutoff(now)
	var out []api.ExamResult
	for _, r := range rs {
		t, ok := CreatedAt(r)
		if ok && !t.Before(cut) {
			out = append(out, r)
		}
	}
	return out
}

// FilterSubject returns the results whose subject exactly matches key.
// An empty key passes everything through.
func FilterSubject(rs []api.ExamResult, key string) []api.ExamResult {
	if key == "" {
		return rs
	}
	var out []api.ExamResult
	for _, r := range rs {
		if r.Subject == key {
			out = append(out, r)
		}
	}
	return out
}

// SubjectStats summarizes one subject's results.
type SubjectStats struct {
	Subject string
	Count   int
	Average int // arithmetic mean of parseable scores, rounded
	Best    int
}

// BySubject computes stats for a single subject over rs.
func BySubject(rs []api.ExamResult, subject string) SubjectStats {
	stats := SubjectStats{Subject: subject}
	sum := 0
	scored := 0
	for _, r := range rs {
		if r.Subject != subject {
			continue
		}
		stats.Count++
		n, ok := Score(r)
		if !ok {
			continue
		}
		scored++
		sum += n
		if n > stats.Best {
			stats.Best = n
		}
	}
	if scored > 0 {
		stats.Average = int(math.Round(float64(sum) / float64(scored)))
	}
	return stats
}

// Average returns the rounded mean score over rs, skipping unparseable
// scores. An empty or all-unparseable input yields 0, never a division
// by zero.
func Average(rs []api.ExamResult) int {
	sum := 0
	scored := 0
	for _, r := range rs {
		n, ok := Score(r)
		if !ok {
			continue
		}
		scored++
		sum += n
	}
	if scored == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(scored)))
}

// Best returns the maximum parseable score over rs, 0 when none.
func Best(rs []api.ExamResult) int {
	best := 0
	for _, r := range rs {
		if n, ok := Score(r); ok && n > best {
			best = n
		}
	}
	return best
}

// SortByDateDesc orders results newest first, leaving the input untouched.
// Rows with unparseable dates sort last.
func SortByDateDesc(rs []api.ExamResult) []api.ExamResult {
	out := make([]api.ExamResult, len(rs))
	copy(out, rs)
	sort.SliceStable(out, func(i, j int) bool {
		ti, oki := CreatedAt(out[i])
		tj, okj := CreatedAt(out[j])
		if oki != okj {
			return oki
		}
		return ti.After(tj)
	})
	return out
}

// RecentProgress returns the newest n results ordered oldest first, the
// shape the dashboard progress strip wants.
func RecentProgress(rs []api.ExamResult, n int) []api.ExamResult {
	sorted := SortByDateDesc(rs)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	}
	return sorted
}

// IsFullExam classifies a result as a full (all-subject) exam. This keeps
// the backend's historical heuristic: an explicit tipo of "completo", or a
// result list longer than five entries. An explicit "completo" always
// counts; any other tipo still falls through to the size heuristic, which
// misclassifies users with more than five quick-exam results.
func IsFullExam(r api.ExamResult, totalResults int) bool {
	if r.Type != nil && *r.Type == "completo" {
		return true
	}
	return totalResults > 5
}

// CountFullExams counts the results IsFullExam classifies as full.
func CountFullExams(rs []api.ExamResult) int {
	n := 0
	for _, r := range rs {
		if IsFullExam(r, len(rs)) {
			n++
		}
	}
	return n
}

// AnswerFilter partitions a detailed-result list.
type AnswerFilter int

const (
	AnswersAll AnswerFilter = iota
	AnswersCorrect
	AnswersIncorrect
)

// Label returns the Spanish display label for the filter.
func (f AnswerFilter) Label() string {
	switch f {
	case AnswersCorrect:
		return "Correctas"
	case AnswersIncorrect:
		return "Incorrectas"
	}
	return "Todas"
}

// IsCorrect reports whether the user's answer matches the correct option.
func IsCorrect(d api.DetailedResult) bool {
	return d.UserAnswer == d.CorrectOption
}

// FilterAnswers returns the rows matching the filter.
func FilterAnswers(details []api.DetailedResult, f AnswerFilter) []api.DetailedResult {
	if f == AnswersAll {
		return details
	}
	var out []api.DetailedResult
	for _, d := range details {
		if IsCorrect(d) == (f == AnswersCorrect) {
			out = append(out, d)
		}
	}
	return out
}

// ScoreLevel bands a score for display.
type ScoreLevel struct {
	Label string
	Icon  string
}

// LevelFor returns the band a score falls in.
func LevelFor(score int) ScoreLevel {
	switch {
	case score >= 80:
		return ScoreLevel{Label: "Excelente", Icon: "▲"}
	case score >= 60:
		return ScoreLevel{Label: "Bueno", Icon: "●"}
	}
	return ScoreLevel{Label: "Mejorando", Icon: "▽"}
}

// MotivationalMessage returns the dashboard tagline for an average score.
func MotivationalMessage(average int) string {
	switch {
	case average >= 85:
		return "¡Eres imparable!"
	case average >= 70:
		return "¡Vas por buen camino!"
	case average >= 50:
		return "¡Sigue mejorando!"
	}
	return "¡Tu momento llegará!"
}

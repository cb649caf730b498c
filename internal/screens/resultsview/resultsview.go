package resultsview

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/knaranjo357/icfes/internal/api"
	"github.com/knaranjo357/icfes/internal/auth"
	"github.com/knaranjo357/icfes/internal/results"
	"github.com/knaranjo357/icfes/internal/router"
	"github.com/knaranjo357/icfes/internal/screen"
	"github.com/knaranjo357/icfes/internal/subjects"
	"github.com/knaranjo357/icfes/internal/ui/layout"
)

// Gateway is the remote surface the results view needs.
type Gateway interface {
	Results(ctx context.Context, token string) ([]api.ExamResult, error)
	DetailedResults(ctx context.Context, token string, examID int) ([]api.DetailedResult, error)
}

type resultsLoadedMsg struct {
	results []api.ExamResult
	err     error
}

type detailsLoadedMsg struct {
	examID  int
	details []api.DetailedResult
	err     error
}

// viewMode is the sub-state of the results screen.
type viewMode int

const (
	modeList viewMode = iota
	modeDetail
)

// subjectFilters cycles "all subjects" plus each subject key.
func subjectFilters() []string {
	keys := []string{""}
	return append(keys, subjects.All()...)
}

// ResultsScreen lists the user's exam history and drills into one exam's
// answers.
type ResultsScreen struct {
	gateway Gateway
	store   *auth.Store

	mode viewMode

	// list state
	all     []api.ExamResult
	loaded  bool
	loadErr string
	cursor  int
	window  results.TimeWindow
	subject int // index into subjectFilters()

	// detail state
	detailExamID int
	details      []api.DetailedResult
	detailErr    string
	detailBusy   bool
	answerFilter results.AnswerFilter
	detailIndex  int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.AuthRequirer = (*ResultsScreen)(nil)

// New creates a ResultsScreen.
func New(gateway Gateway, store *auth.Store) *ResultsScreen {
	return &ResultsScreen{
		gateway: gateway,
		store:   store,
		// Reviewing mistakes is the common case.
		answerFilter: results.AnswersIncorrect,
	}
}

func (r *ResultsScreen) RequiresAuth() bool {
	return true
}

func (r *ResultsScreen) Title() string {
	return "Mis resultados"
}

func (r *ResultsScreen) Init() tea.Cmd {
	return r.fetchResults()
}

func (r *ResultsScreen) fetchResults() tea.Cmd {
	gateway := r.gateway
	token := r.store.Token()
	return func() tea.Msg {
		rs, err := gateway.Results(context.Background(), token)
		return resultsLoadedMsg{results: rs, err: err}
	}
}

func (r *ResultsScreen) fetchDetails(examID int) tea.Cmd {
	gateway := r.gateway
	token := r.store.Token()
	return func() tea.Msg {
		ds, err := gateway.DetailedResults(context.Background(), token, examID)
		return detailsLoadedMsg{examID: examID, details: ds, err: err}
	}
}

// filtered applies the window and subject filters to the loaded history.
func (r *ResultsScreen) filtered() []api.ExamResult {
	rs := results.FilterWindow(r.all, r.window, time.Now())
	if key := subjectFilters()[r.subject]; key != "" {
		rs = results.FilterSubject(rs, key)
	}
	return rs
}

// filteredDetails applies the answer filter to the loaded exam detail.
func (r *ResultsScreen) filteredDetails() []api.DetailedResult {
	return results.FilterAnswers(r.details, r.answerFilter)
}

func (r *ResultsScreen) clampCursor() {
	n := len(r.filtered())
	if r.cursor > n-1 {
		r.cursor = n - 1
	}
	if r.cursor < 0 {
		r.cursor = 0
	}
}

func (r *ResultsScreen) clampDetailIndex() {
	n := len(r.filteredDetails())
	if r.detailIndex > n-1 {
		r.detailIndex = n - 1
	}
	if r.detailIndex < 0 {
		r.detailIndex = 0
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultsLoadedMsg:
		r.loaded = true
		if msg.err != nil {
			r.loadErr = errText(msg.err)
			return r, nil
		}
		r.loadErr = ""
		r.all = results.SortByDateDesc(msg.results)
		r.clampCursor()
		return r, nil

	case detailsLoadedMsg:
		// A result that arrives after the user backed out or opened a
		// different exam is stale.
		if r.mode != modeDetail || msg.examID != r.detailExamID {
			return r, nil
		}
		r.detailBusy = false
		if msg.err != nil {
			r.detailErr = errText(msg.err)
			return r, nil
		}
		r.details = msg.details
		r.detailIndex = 0
		r.clampDetailIndex()
		return r, nil

	case tea.KeyPressMsg:
		if r.mode == modeDetail {
			return r.handleDetailKey(msg.String())
		}
		return r.handleListKey(msg.String())
	}

	return r, nil
}

func (r *ResultsScreen) handleListKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc", "q":
		return r, func() tea.Msg { return router.PopScreenMsg{} }

	case "r":
		if r.loadErr != "" {
			r.loaded = false
			r.loadErr = ""
			return r, r.fetchResults()
		}

	case "up", "k":
		if r.cursor > 0 {
			r.cursor--
		}

	case "down", "j":
		if r.cursor < len(r.filtered())-1 {
			r.cursor++
		}

	case "m":
		r.subject = (r.subject + 1) % len(subjectFilters())
		r.clampCursor()

	case "t":
		r.window = (r.window + 1) % 4
		r.clampCursor()

	case "enter":
		rs := r.filtered()
		if len(rs) == 0 {
			return r, nil
		}
		picked := rs[r.cursor]
		r.mode = modeDetail
		r.detailExamID = picked.ID
		r.details = nil
		r.detailErr = ""
		r.detailBusy = true
		r.detailIndex = 0
		return r, r.fetchDetails(picked.ID)
	}

	return r, nil
}

func (r *ResultsScreen) handleDetailKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc", "q":
		r.mode = modeList
		r.details = nil
		r.detailErr = ""
		r.detailBusy = false
		return r, nil

	case "r":
		if r.detailErr != "" {
			r.detailErr = ""
			r.detailBusy = true
			return r, r.fetchDetails(r.detailExamID)
		}

	case "left", "h":
		if r.detailIndex > 0 {
			r.detailIndex--
		}

	case "right", "l":
		if r.detailIndex < len(r.filteredDetails())-1 {
			r.detailIndex++
		}

	case "f":
		r.answerFilter = (r.answerFilter + 1) % 3
		r.detailIndex = 0
		r.clampDetailIndex()
	}

	return r, nil
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	if r.mode == modeDetail {
		return []layout.KeyHint{
			{Key: "←/→", Description: "cambiar pregunta"},
			{Key: "f", Description: "filtrar respuestas"},
			{Key: "esc", Description: "volver a la lista"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "navegar"},
		{Key: "enter", Description: "ver detalle"},
		{Key: "m", Description: "materia"},
		{Key: "t", Description: "periodo"},
		{Key: "esc", Description: "volver"},
	}
}

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

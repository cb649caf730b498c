package dashboard

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/knaranjo357/icfes/internal/api"
	"github.com/knaranjo357/icfes/internal/auth"
	"github.com/knaranjo357/icfes/internal/exam"
	"github.com/knaranjo357/icfes/internal/results"
	"github.com/knaranjo357/icfes/internal/router"
	"github.com/knaranjo357/icfes/internal/screen"
	"github.com/knaranjo357/icfes/internal/screens/examscreen"
	"github.com/knaranjo357/icfes/internal/screens/resultsview"
	"github.com/knaranjo357/icfes/internal/subjects"
	"github.com/knaranjo357/icfes/internal/ui/components"
	"github.com/knaranjo357/icfes/internal/ui/layout"
)

// Gateway is the remote surface the dashboard and its child screens use.
type Gateway interface {
	QuickExam(ctx context.Context, subject string) ([]api.Question, error)
	FullExam(ctx context.Context) ([]api.Question, error)
	SubmitAnswers(ctx context.Context, token string, answers []api.AnswerPair) error
	Results(ctx context.Context, token string) ([]api.ExamResult, error)
	DetailedResults(ctx context.Context, token string, examID int) ([]api.DetailedResult, error)
}

type resultsLoadedMsg struct {
	results []api.ExamResult
	err     error
}

type loggedOutMsg struct{}

// DashboardScreen is the authenticated home screen: practice menu plus
// a stats strip computed from the user's exam history.
type DashboardScreen struct {
	gateway Gateway
	store   *auth.Store

	menu    components.Menu
	results []api.ExamResult
	loaded  bool
	loadErr string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.AuthRequirer = (*DashboardScreen)(nil)

// New creates a DashboardScreen backed by the given gateway and session store.
func New(gateway Gateway, store *auth.Store) *DashboardScreen {
	d := &DashboardScreen{
		gateway: gateway,
		store:   store,
	}
	d.menu = components.NewMenu(d.buildMenu())
	return d
}

func (d *DashboardScreen) buildMenu() []components.MenuItem {
	var items []components.MenuItem

	for _, info := range subjects.AllInfo() {
		info := info
		items = append(items, components.MenuItem{
			Label:  info.DisplayName,
			Detail: info.Description,
			Action: func() tea.Cmd {
				s := examscreen.New(d.gateway, d.store, exam.ModeQuick, info.Key, d.resultsFactory)
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: s}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{
			Label:  "Examen completo",
			Detail: "las cinco materias en una sola prueba",
			Action: func() tea.Cmd {
				s := examscreen.New(d.gateway, d.store, exam.ModeFull, "", d.resultsFactory)
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: s}
				}
			},
		},
		components.MenuItem{
			Label:  "Mis resultados",
			Detail: "historial y estadísticas",
			Action: func() tea.Cmd {
				s := d.resultsFactory()
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: s}
				}
			},
		},
		components.MenuItem{
			Label: "Cerrar sesión",
			Action: func() tea.Cmd {
				d.store.Logout()
				// Any message makes the router re-check the session
				// and fall back to the landing screen.
				return func() tea.Msg {
					return loggedOutMsg{}
				}
			},
		},
		components.MenuItem{
			Label: "Salir",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	)

	return items
}

func (d *DashboardScreen) resultsFactory() screen.Screen {
	return resultsview.New(d.gateway, d.store)
}

func (d *DashboardScreen) RequiresAuth() bool {
	return true
}

func (d *DashboardScreen) Title() string {
	return "Inicio"
}

func (d *DashboardScreen) Init() tea.Cmd {
	gateway := d.gateway
	token := d.store.Token()
	return func() tea.Msg {
		rs, err := gateway.Results(context.Background(), token)
		return resultsLoadedMsg{results: rs, err: err}
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultsLoadedMsg:
		d.loaded = true
		if msg.err != nil {
			// The menu stays usable; stats simply show a notice.
			d.loadErr = "No se pudieron cargar tus estadísticas."
			return d, nil
		}
		d.results = results.SortByDateDesc(msg.results)
		// Replace the static subject blurbs with live averages.
		for i, info := range subjects.AllInfo() {
			if detail := subjectAverageDetail(d.results, info.Key); detail != "" {
				d.menu.Items[i].Detail = detail
			}
		}
		return d, nil

	case loggedOutMsg:
		return d, nil

	case tea.KeyPressMsg:
		if msg.String() == "q" {
			return d, tea.Quit
		}
	}

	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "navegar"},
		{Key: "enter", Description: "seleccionar"},
		{Key: "q", Description: "salir"},
	}
}

// userLabel returns the identity shown in the header.
func (d *DashboardScreen) userLabel() string {
	if s := d.store.Session(); s != nil {
		return s.User.Email
	}
	return ""
}

func subjectAverageDetail(rs []api.ExamResult, subject string) string {
	stats := results.BySubject(rs, subject)
	if stats.Count == 0 {
		return ""
	}
	return fmt.Sprintf("promedio %d · %d intentos", stats.Average, stats.Count)
}

package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/knaranjo357/icfes/internal/auth"
	"github.com/knaranjo357/icfes/internal/router"
	"github.com/knaranjo357/icfes/internal/screen"
	"github.com/knaranjo357/icfes/internal/screens/authform"
	"github.com/knaranjo357/icfes/internal/screens/dashboard"
	"github.com/knaranjo357/icfes/internal/screens/landing"
	"github.com/knaranjo357/icfes/internal/ui/layout"
	"github.com/knaranjo357/icfes/internal/ui/theme"
)

// Options carries the app's injected dependencies.
type Options struct {
	Gateway dashboard.Gateway
	Auth    *auth.Store
}

// hydratedMsg is sent once the persisted session has been loaded.
type hydratedMsg struct{}

// AppModel is the root Bubble Tea model. It blocks rendering behind a
// loading gate until session hydration finishes, then hands control to
// the router.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	return AppModel{opts: opts}
}

// landingFactory builds the public entry screen with its auth forms wired.
func (m AppModel) landingFactory() screen.Screen {
	return landing.New(
		func() screen.Screen {
			return authform.New(authform.ModeLogin, m.opts.Auth, m.dashboardFactory)
		},
		func() screen.Screen {
			return authform.New(authform.ModeRegister, m.opts.Auth, m.dashboardFactory)
		},
	)
}

func (m AppModel) dashboardFactory() screen.Screen {
	return dashboard.New(m.opts.Gateway, m.opts.Auth)
}

func (m AppModel) Init() tea.Cmd {
	store := m.opts.Auth
	return func() tea.Msg {
		store.Hydrate()
		return hydratedMsg{}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hydratedMsg:
		var initial screen.Screen
		if m.opts.Auth.Authenticated() {
			initial = m.dashboardFactory()
		} else {
			initial = m.landingFactory()
		}
		m.router = router.New(initial, m.opts.Auth, m.landingFactory)
		return m, initial.Init()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	if m.router == nil {
		return m, nil
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	if m.router == nil {
		v.SetContent(lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Cargando...")))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	userLabel := ""
	if s := m.opts.Auth.Session(); s != nil {
		userLabel = s.User.Email
	}

	header := layout.RenderHeader(title, userLabel, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "navegar"},
		{Key: "Enter", Description: "seleccionar"},
		{Key: "Ctrl+C", Description: "salir"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "salir"})
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

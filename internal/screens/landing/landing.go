package landing

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/knaranjo357/icfes/internal/router"
	"github.com/knaranjo357/icfes/internal/screen"
	"github.com/knaranjo357/icfes/internal/ui/components"
	"github.com/knaranjo357/icfes/internal/ui/layout"
	"github.com/knaranjo357/icfes/internal/ui/theme"
)

// LandingScreen is the public entry point shown while no session is
// active. It offers login, registration and exit.
type LandingScreen struct {
	menu            components.Menu
	loginFactory    func() screen.Screen
	registerFactory func() screen.Screen
}

var _ screen.Screen = (*LandingScreen)(nil)

// New creates a LandingScreen. The factories produce the login and
// registration form screens when the user picks those entries.
func New(loginFactory, registerFactory func() screen.Screen) *LandingScreen {
	l := &LandingScreen{
		loginFactory:    loginFactory,
		registerFactory: registerFactory,
	}

	l.menu = components.NewMenu([]components.MenuItem{
		{
			Label:  "Iniciar sesión",
			Detail: "entra con tu cuenta",
			Action: func() tea.Cmd {
				s := l.loginFactory()
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: s}
				}
			},
		},
		{
			Label:  "Crear cuenta",
			Detail: "regístrate para guardar tu progreso",
			Action: func() tea.Cmd {
				s := l.registerFactory()
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: s}
				}
			},
		},
		{
			Label: "Salir",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	})

	return l
}

func (l *LandingScreen) Title() string {
	return ""
}

func (l *LandingScreen) Init() tea.Cmd {
	return nil
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "q" {
		return l, tea.Quit
	}
	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LandingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "navegar"},
		{Key: "enter", Description: "seleccionar"},
		{Key: "q", Description: "salir"},
	}
}

func (l *LandingScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Prepárate para el examen de estado")
	sections = append(sections, tagline)
	sections = append(sections, "")
	sections = append(sections, l.menu.View())

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

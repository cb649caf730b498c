package authform

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/knaranjo357/icfes/internal/auth"
	"github.com/knaranjo357/icfes/internal/router"
	"github.com/knaranjo357/icfes/internal/screen"
	"github.com/knaranjo357/icfes/internal/ui/components"
	"github.com/knaranjo357/icfes/internal/ui/layout"
	"github.com/knaranjo357/icfes/internal/ui/theme"
)

const minPasswordLen = 6

// Mode selects the form variant.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

// field indices into AuthScreen.inputs.
const (
	fieldEmail = iota
	fieldPassword
	fieldConfirm
)

type authDoneMsg struct {
	ok bool
}

// AuthScreen is the login/registration form. The same screen serves
// both modes; register adds a confirm-password field.
type AuthScreen struct {
	mode    Mode
	store   *auth.Store
	homeFty func() screen.Screen

	inputs     []components.TextInput
	focused    int
	submitting bool
	errText    string
}

var _ screen.Screen = (*AuthScreen)(nil)

// New creates an AuthScreen in the given mode. homeFactory produces the
// screen the stack resets to after a successful login or registration.
func New(mode Mode, store *auth.Store, homeFactory func() screen.Screen) *AuthScreen {
	a := &AuthScreen{
		mode:    mode,
		store:   store,
		homeFty: homeFactory,
	}
	a.buildInputs()
	return a
}

func (a *AuthScreen) buildInputs() {
	email := components.NewTextInput("Correo", "tu@correo.com", false, 64)
	password := components.NewTextInput("Contraseña", "", true, 64)

	a.inputs = []components.TextInput{email, password}
	if a.mode == ModeRegister {
		confirm := components.NewTextInput("Confirmar contraseña", "", true, 64)
		a.inputs = append(a.inputs, confirm)
	}
	a.focused = fieldEmail
}

func (a *AuthScreen) Title() string {
	if a.mode == ModeRegister {
		return "Crear cuenta"
	}
	return "Iniciar sesión"
}

func (a *AuthScreen) Init() tea.Cmd {
	return a.inputs[a.focused].Focus()
}

func (a *AuthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		a.submitting = false
		if msg.ok {
			home := a.homeFty()
			return a, func() tea.Msg {
				return router.ResetScreenMsg{Screen: home}
			}
		}
		if a.mode == ModeRegister {
			a.errText = "No se pudo crear la cuenta. Inténtalo de nuevo."
		} else {
			a.errText = "Credenciales incorrectas. Revisa tu correo y contraseña."
		}
		return a, nil

	case tea.KeyPressMsg:
		if a.submitting {
			return a, nil
		}

		switch msg.String() {
		case "esc":
			return a, func() tea.Msg {
				return router.PopScreenMsg{}
			}
		case "ctrl+t":
			return a, a.toggleMode()
		case "tab", "shift+tab", "up", "down":
			return a, a.cycleFocus(msg.String())
		case "enter":
			if a.focused < len(a.inputs)-1 {
				return a, a.focusField(a.focused + 1)
			}
			return a, a.submit()
		}
	}

	var cmd tea.Cmd
	a.inputs[a.focused], cmd = a.inputs[a.focused].Update(msg)
	return a, cmd
}

// toggleMode switches between login and register, keeping the typed
// email so the user does not retype it.
func (a *AuthScreen) toggleMode() tea.Cmd {
	email := a.inputs[fieldEmail].Value()

	if a.mode == ModeLogin {
		a.mode = ModeRegister
	} else {
		a.mode = ModeLogin
	}
	a.buildInputs()
	a.inputs[fieldEmail].Model.SetValue(email)
	a.errText = ""
	return a.inputs[a.focused].Focus()
}

func (a *AuthScreen) cycleFocus(key string) tea.Cmd {
	next := a.focused
	switch key {
	case "tab", "down":
		next = (a.focused + 1) % len(a.inputs)
	case "shift+tab", "up":
		next = (a.focused - 1 + len(a.inputs)) % len(a.inputs)
	}
	return a.focusField(next)
}

func (a *AuthScreen) focusField(i int) tea.Cmd {
	a.inputs[a.focused].Blur()
	a.focused = i
	return a.inputs[a.focused].Focus()
}

// validate checks the form locally before any network call. Returns an
// empty string when the form is acceptable.
func (a *AuthScreen) validate() string {
	email := strings.TrimSpace(a.inputs[fieldEmail].Value())
	password := a.inputs[fieldPassword].Value()

	if email == "" || password == "" {
		return "Completa todos los campos."
	}
	if !strings.Contains(email, "@") {
		return "Ingresa un correo válido."
	}
	if a.mode == ModeRegister {
		if len(password) < minPasswordLen {
			return "La contraseña debe tener al menos 6 caracteres."
		}
		if password != a.inputs[fieldConfirm].Value() {
			return "Las contraseñas no coinciden."
		}
	}
	return ""
}

func (a *AuthScreen) submit() tea.Cmd {
	if errText := a.validate(); errText != "" {
		a.errText = errText
		return nil
	}

	a.errText = ""
	a.submitting = true

	email := strings.TrimSpace(a.inputs[fieldEmail].Value())
	password := a.inputs[fieldPassword].Value()
	mode := a.mode
	store := a.store

	return func() tea.Msg {
		ctx := context.Background()
		var ok bool
		if mode == ModeRegister {
			ok = store.Register(ctx, email, password)
		} else {
			ok = store.Login(ctx, email, password)
		}
		return authDoneMsg{ok: ok}
	}
}

func (a *AuthScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "tab", Description: "siguiente campo"},
		{Key: "enter", Description: "enviar"},
		{Key: "ctrl+t", Description: "cambiar modo"},
		{Key: "esc", Description: "volver"},
	}
}

func (a *AuthScreen) View(width, height int) string {
	var sections []string

	heading := a.Title()
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(heading))
	sections = append(sections, "")

	for i := range a.inputs {
		sections = append(sections, a.inputs[i].View())
		sections = append(sections, "")
	}

	if a.submitting {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("Enviando..."))
	} else if a.errText != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(a.errText))
	}

	sections = append(sections, "")
	var hint string
	if a.mode == ModeLogin {
		hint = "¿No tienes cuenta? Presiona ctrl+t para registrarte."
	} else {
		hint = "¿Ya tienes cuenta? Presiona ctrl+t para iniciar sesión."
	}
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(hint))

	content := strings.Join(sections, "\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3).
		Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

package components

import (
	"strings"

	"github.com/Veraticus/pix-flow/internal/common"
	"github.com/Veraticus/pix-flow/internal/model"
	"github.com/Veraticus/pix-flow/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldName = iota
	fieldCPF
)

// SetupFormModel is the first-run form asking for name and CPF.
type SetupFormModel struct {
	theme  themes.Theme
	alert  string
	inputs []textinput.Model
	focus  int
	width  int
}

type setupKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
}

var setupKeys = setupKeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "salvar"),
	),
}

// NewSetupForm creates the form with the name field focused.
func NewSetupForm(theme themes.Theme) SetupFormModel {
	name := textinput.New()
	name.Placeholder = "Seu nome completo"
	name.Prompt = "Nome: "
	name.CharLimit = 80
	name.Width = 40
	name.Focus()

	cpf := textinput.New()
	cpf.Placeholder = "000.000.000-00"
	cpf.Prompt = "CPF:  "
	cpf.CharLimit = 14
	cpf.Width = 40

	return SetupFormModel{
		theme:  theme,
		inputs: []textinput.Model{name, cpf},
		width:  56,
	}
}

// Init starts the cursor blink.
func (m SetupFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m SetupFormModel) Update(msg tea.Msg) (SetupFormModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		var cmd tea.Cmd
		switch {
		case key.Matches(msg, setupKeys.Next):
			cmd = m.setFocus(m.focus + 1)
		case key.Matches(msg, setupKeys.Prev):
			cmd = m.setFocus(m.focus - 1)
		case key.Matches(msg, setupKeys.Submit):
			if m.focus == fieldName && strings.TrimSpace(m.inputs[fieldCPF].Value()) == "" {
				cmd = m.setFocus(fieldCPF)
			} else {
				cmd = m.submit()
			}
		default:
			m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submit validates the fields. An incomplete form only sets the alert.
func (m *SetupFormModel) submit() tea.Cmd {
	profile, err := model.NewUserProfile(m.inputs[fieldName].Value(), m.inputs[fieldCPF].Value())
	if err != nil {
		m.alert = common.UserMessage(err)
		return nil
	}
	m.alert = ""
	return func() tea.Msg {
		return SetupSubmittedMsg{Profile: profile}
	}
}

func (m *SetupFormModel) setFocus(i int) tea.Cmd {
	n := len(m.inputs)
	m.focus = ((i % n) + n) % n
	for j := range m.inputs {
		if j == m.focus {
			continue
		}
		m.inputs[j].Blur()
	}
	return m.inputs[m.focus].Focus()
}

// SetAlert shows msg under the inputs.
func (m *SetupFormModel) SetAlert(msg string) {
	m.alert = msg
}

// Alert returns the message shown under the inputs.
func (m SetupFormModel) Alert() string {
	return m.alert
}

// Focused returns the index of the focused field.
func (m SetupFormModel) Focused() int {
	return m.focus
}

// View renders the form.
func (m SetupFormModel) View() string {
	parts := []string{
		m.theme.Title.Render("Bem-vindo!"),
		m.theme.Subtitle.Render("Para continuar, informe seus dados."),
		"",
		m.inputs[fieldName].View(),
		m.inputs[fieldCPF].View(),
	}
	if m.alert != "" {
		parts = append(parts, "", m.theme.Alert.Render(m.alert))
	}
	parts = append(parts, "", m.theme.Label.Render("tab: próximo campo • enter: salvar"))

	return m.theme.Modal.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

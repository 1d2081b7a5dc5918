package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/pix-flow/internal/format"
	"github.com/Veraticus/pix-flow/internal/model"
	"github.com/Veraticus/pix-flow/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatementListModel renders the extrato grouped by day and tracks the
// highlighted line.
type StatementListModel struct {
	theme  themes.Theme
	groups []model.StatementGroup
	lines  []model.Transaction
	width  int
	cursor int
}

type listKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

var listKeys = listKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "abrir"),
	),
}

// NewStatementList creates an empty list.
func NewStatementList(theme themes.Theme) StatementListModel {
	return StatementListModel{
		theme: theme,
		width: 60,
	}
}

// SetGroups replaces the whole content and moves the cursor to the top.
func (m *StatementListModel) SetGroups(groups []model.StatementGroup) {
	m.groups = groups
	m.lines = nil
	for _, g := range groups {
		m.lines = append(m.lines, g.Items...)
	}
	m.cursor = 0
}

// Resize sets the render width.
func (m *StatementListModel) Resize(width int) {
	if width > 0 {
		m.width = width
	}
}

// Cursor returns the index of the highlighted line.
func (m StatementListModel) Cursor() int {
	return m.cursor
}

// Len returns the number of lines.
func (m StatementListModel) Len() int {
	return len(m.lines)
}

// Update handles messages.
func (m StatementListModel) Update(msg tea.Msg) (StatementListModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.lines) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, listKeys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(keyMsg, listKeys.Down):
		m.cursor = min(m.cursor+1, len(m.lines)-1)
	case key.Matches(keyMsg, listKeys.Select):
		line, index := m.lines[m.cursor], m.cursor
		return m, func() tea.Msg {
			return StatementSelectedMsg{Transaction: line, Index: index}
		}
	}
	return m, nil
}

// View renders the grouped lines.
func (m StatementListModel) View() string {
	if len(m.groups) == 0 {
		return m.theme.Label.Render("Nenhuma movimentação.")
	}

	var b strings.Builder
	index := 0
	for gi, g := range m.groups {
		if gi > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.theme.Label.Render(g.Header))
		b.WriteString("\n")
		for _, t := range g.Items {
			b.WriteString(m.renderLine(t, index == m.cursor))
			b.WriteString("\n")
			index++
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m StatementListModel) renderLine(t model.Transaction, selected bool) string {
	amountStyle := m.theme.AmountOut
	amount := format.Money(t.SignedCents())
	if t.Direction == model.DirectionIn {
		amountStyle = m.theme.AmountIn
		amount = format.SignedMoney(t.SignedCents())
	}

	inner := m.width - 6
	top := spread(t.Title, amountStyle.Render(amount), inner)
	bottom := spread(t.Counterparty, format.Clock(t.At), inner)

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		fmt.Sprintf(" %s  ", t.Icon),
		lipgloss.JoinVertical(lipgloss.Left, top, m.theme.Label.Render(bottom)),
	)
	if selected {
		return m.theme.Selected.Render(row)
	}
	return row
}

// spread places left and right at the edges of width.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

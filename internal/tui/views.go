package tui

import (
	"fmt"

	"github.com/Veraticus/pix-flow/internal/format"
	"github.com/Veraticus/pix-flow/internal/model"
	"github.com/Veraticus/pix-flow/internal/statement"
	"github.com/Veraticus/pix-flow/internal/tui/components"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

const cardWidth = 48

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return m.renderLoading()
	}

	if m.router.ModalVisible() {
		return m.place(m.form.View())
	}
	if m.state.Processing {
		return m.place(m.renderProcessing())
	}

	current := m.router.Current()
	body := m.renderScreen(current)
	if !m.router.Active(current) {
		body = lipgloss.NewStyle().Faint(true).Render(body)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(current),
		"",
		body,
		"",
		m.renderStatusBar(current),
	)
}

// renderLoading renders the screen shown until the profile is loaded.
func (m Model) renderLoading() string {
	return m.place(lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Carregando..."))
}

func (m Model) place(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderHeader(current model.ScreenID) string {
	left := m.theme.Header.Render(m.state.HeaderName())
	title := current.Title()
	if title == "" {
		return left
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", m.theme.Bold.Render(title))
}

func (m Model) renderScreen(current model.ScreenID) string {
	switch current {
	case model.ScreenHome:
		return m.renderHome()
	case model.ScreenScanner:
		return m.renderScanner()
	case model.ScreenPaymentDetails:
		if m.state.Payment == nil {
			return ""
		}
		return components.RenderPaymentDetails(m.theme, *m.state.Payment, cardWidth)
	case model.ScreenReceipt:
		if m.state.Receipt == nil {
			return ""
		}
		return components.RenderReceipt(m.theme, *m.state.Receipt, cardWidth)
	case model.ScreenExtrato:
		return m.renderExtrato()
	}
	return ""
}

func (m Model) renderHome() string {
	menu := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("O que você quer fazer?"),
		fmt.Sprintf("%s  Pagar com QR Code", m.theme.Selected.Render(" p ")),
		fmt.Sprintf("%s  Extrato", m.theme.Selected.Render(" e ")),
	)
	return m.theme.RoundedBox.Width(cardWidth).Render(menu)
}

// renderScanner draws the viewfinder sized after the decode region and the
// text of the reader mount point.
func (m Model) renderScanner() string {
	box := m.scanner.Config().QRBox
	w := max(box.Width/10, 12)
	h := max(box.Height/25, 4)

	inside := "Aponte a câmera para o QR Code"
	if text := m.scanner.MountText(); text != "" {
		inside = m.theme.Alert.Render(text)
	}
	finder := m.theme.Viewfinder.Width(w).Height(h).Render(inside)

	status := "Câmera desligada"
	if s := m.scanner.Session(); s != nil {
		switch {
		case s.Abandoned():
			status = "Encerrando câmera..."
		case s.Started():
			status = "Câmera ativa • procurando QR Code"
		default:
			status = "Iniciando câmera..."
		}
	}

	parts := []string{finder, m.theme.Label.Render(status)}
	if m.config.SourceHint != "" {
		parts = append(parts, m.theme.Label.Render(m.config.SourceHint))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderExtrato() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Label.Render("Saldo do período: "+format.Money(statement.Balance(m.book.Groups()))),
		"",
		m.extrato.View(),
	)
}

func (m Model) renderProcessing() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		m.spinner.View(),
		"",
		m.theme.Bold.Render("Processando pagamento..."),
	)
	return m.theme.Overlay.Render(content)
}

// renderStatusBar renders the key hints of the current screen.
func (m Model) renderStatusBar(current model.ScreenID) string {
	keys := m.screenKeys(current)
	h := m.help
	h.ShowAll = m.fullHelp
	return m.theme.StatusBar.Render(h.View(keys))
}

func (m Model) screenKeys(current model.ScreenID) screenKeys {
	k := m.keymap
	var short []key.Binding
	switch current {
	case model.ScreenHome:
		short = []key.Binding{k.Scan, k.Statement}
	case model.ScreenScanner:
		short = []key.Binding{k.Simulate, k.Back}
	case model.ScreenPaymentDetails:
		short = []key.Binding{k.Confirm, k.Back}
	case model.ScreenReceipt:
		short = []key.Binding{k.Statement, k.Back}
	case model.ScreenExtrato:
		short = []key.Binding{k.Up, k.Down, k.Select, k.Back}
	}
	short = append(short, k.Help, k.Quit)

	return screenKeys{
		short: short,
		full: [][]key.Binding{
			short,
			{k.ClearScreen, k.ForceQuit},
		},
	}
}

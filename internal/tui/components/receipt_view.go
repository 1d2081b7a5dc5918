package components

import (
	"github.com/Veraticus/pix-flow/internal/model"
	"github.com/Veraticus/pix-flow/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// RenderReceipt renders the comprovante of a Pix payment.
func RenderReceipt(theme themes.Theme, r model.Receipt, width int) string {
	field := func(label, value string) string {
		return lipgloss.JoinVertical(lipgloss.Left,
			theme.Label.Render(label),
			theme.Bold.Render(value),
		)
	}

	amount := r.Amount
	if amount != "" {
		amount = "R$ " + amount
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Pix enviado"),
		theme.Label.Render(r.FullDate+" • "+r.Time),
		"",
		field("Valor", amount),
		"",
		field("Para", r.Payee),
		"",
		field("De", r.PayerName),
		field("CPF", r.PayerCPF),
		"",
		field("ID da transação", r.ID),
	)
	return theme.RoundedBox.Width(width).Render(content)
}

// RenderPaymentDetails renders the confirmation card of a scanned payment.
func RenderPaymentDetails(theme themes.Theme, p model.PaymentData, width int) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		theme.Label.Render("Você está pagando"),
		theme.Title.Render("R$ "+p.Amount),
		theme.Label.Render("Para"),
		theme.Bold.Render(p.Payee),
		"",
		theme.Label.Render("Data do pagamento"),
		theme.Bold.Render(p.Date),
	)
	return theme.RoundedBox.Width(width).Render(content)
}

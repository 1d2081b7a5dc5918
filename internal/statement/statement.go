// Package statement builds the mock account statement ("extrato").
package statement

import (
	"math/rand"
	"time"

	"github.com/Veraticus/pix-flow/internal/format"
	"github.com/Veraticus/pix-flow/internal/model"
)

// ReceiptPayee is the payee recorded when the latest Pix line is opened.
const ReceiptPayee = "Loja Exemplo"

// Build returns the statement as of now: a group for today with the latest
// Pix sent and an earlier debit purchase, and a group for yesterday with a
// Pix received. The earlier purchase gets a random minute from rng.
func Build(now time.Time, rng *rand.Rand) []model.StatementGroup {
	yesterday := now.AddDate(0, 0, -1)

	latest := model.Transaction{
		At:           now,
		Kind:         model.KindPixSent,
		Title:        "Pix enviado",
		Counterparty: ReceiptPayee,
		Icon:         "↗",
		Direction:    model.DirectionOut,
		AmountCents:  5000,
		OpensReceipt: true,
	}

	earlierAt := now.Add(-3 * time.Hour)
	earlierAt = time.Date(earlierAt.Year(), earlierAt.Month(), earlierAt.Day(),
		earlierAt.Hour(), rng.Intn(60), 0, 0, earlierAt.Location())
	earlier := model.Transaction{
		At:           earlierAt,
		Kind:         model.KindDebitPurchase,
		Title:        "Compra no débito",
		Counterparty: "Padaria Central",
		Icon:         "🛒",
		Direction:    model.DirectionOut,
		AmountCents:  2490,
	}

	received := model.Transaction{
		At:           time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 14, 30, 0, 0, yesterday.Location()),
		Kind:         model.KindPixReceived,
		Title:        "Pix recebido",
		Counterparty: "Maria Silva",
		Icon:         "↙",
		Direction:    model.DirectionIn,
		AmountCents:  150000,
	}

	groups := []model.StatementGroup{
		{Day: now, Header: format.HeaderDate(now), Items: []model.Transaction{latest, earlier}},
		{Day: yesterday, Header: format.HeaderDate(yesterday), Items: []model.Transaction{received}},
	}

	for gi := range groups {
		for ti := range groups[gi].Items {
			groups[gi].Items[ti].ID = groups[gi].Items[ti].GenerateHash()[:16]
		}
	}

	return groups
}

// PaymentFor returns the payment data shown when a statement line that opens
// the receipt is selected.
func PaymentFor(t model.Transaction) model.PaymentData {
	return model.PaymentData{
		Payee:  t.Counterparty,
		Amount: format.Decimal(t.AmountCents),
		Date:   format.Date(t.At),
	}
}

// Lines flattens groups into a slice of statement lines in display order.
func Lines(groups []model.StatementGroup) []model.Transaction {
	var out []model.Transaction
	for _, g := range groups {
		out = append(out, g.Items...)
	}
	return out
}

// Balance returns the sum of all signed amounts in cents.
func Balance(groups []model.StatementGroup) int64 {
	var total int64
	for _, t := range Lines(groups) {
		total += t.SignedCents()
	}
	return total
}

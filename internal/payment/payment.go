// Package payment synthesizes the payment shown after a QR code is read.
package payment

import (
	"time"

	"github.com/Veraticus/pix-flow/internal/format"
	"github.com/Veraticus/pix-flow/internal/model"
)

const (
	// ScannedPayee is the payee of every scanned code.
	ScannedPayee = "Loja Exemplo - QR Scanned"
	// ScannedAmount is the pt-BR amount of every scanned code.
	ScannedAmount = "50,00"
	// DefaultProcessingDelay is how long a payment takes to "clear".
	DefaultProcessingDelay = 2 * time.Second
)

// FromScan returns the payment for a decoded QR code. The payload is not
// parsed: any text yields the same payee and amount, dated today.
func FromScan(_ string, now time.Time) model.PaymentData {
	return model.PaymentData{
		Payee:  ScannedPayee,
		Amount: ScannedAmount,
		Date:   format.Date(now),
	}
}

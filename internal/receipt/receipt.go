// Package receipt renders the Pix payment receipt.
package receipt

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/Veraticus/pix-flow/internal/format"
	"github.com/Veraticus/pix-flow/internal/model"
)

// IDPrefix starts every receipt identifier.
const IDPrefix = "E"

// randomSpan bounds the random suffix of a receipt identifier.
const randomSpan = 10_000_000_000

// Generate builds the receipt for payment at now. payment and user may be
// nil; the matching fields are then left empty.
func Generate(payment *model.PaymentData, user *model.UserProfile, now time.Time, rng *rand.Rand) model.Receipt {
	r := model.Receipt{
		FullDate: format.CapitalizeFirst(format.LongDate(now)),
		Time:     format.ReceiptTime(now),
		ID:       NewID(now, rng),
	}

	if payment != nil {
		r.Payee = payment.Payee
		r.Amount = payment.Amount
	}

	if user != nil {
		r.PayerName = format.Upper(user.Name)
		r.PayerCPF = user.TaxID
	}

	return r
}

// NewID returns "E" followed by the unix milliseconds of now and a random
// integer below 1e10.
func NewID(now time.Time, rng *rand.Rand) string {
	return IDPrefix + strconv.FormatInt(now.UnixMilli(), 10) + strconv.FormatInt(rng.Int63n(randomSpan), 10)
}

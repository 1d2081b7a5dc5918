package model

// PaymentData is the transient record shown on the confirmation screen and
// consumed by receipt generation. It is overwritten by every scan or
// statement selection.
type PaymentData struct {
	Payee  string
	Amount string // pt-BR decimal, e.g. "50,00"
	Date   string // pt-BR short date, e.g. "10/12/2025"
}

// Receipt holds the rendered fields of a payment receipt.
type Receipt struct {
	Payee     string
	FullDate  string // "Quarta-feira, 10/12/2025"
	Time      string // "16h48"
	ID        string
	PayerName string
	PayerCPF  string
	Amount    string
}

package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// TransactionKind is the type of a statement line.
type TransactionKind string

const (
	KindPixSent       TransactionKind = "pix-out"
	KindDebitPurchase TransactionKind = "debit-purchase"
	KindPixReceived   TransactionKind = "pix-in"
)

// Direction tells whether money left or entered the account.
type Direction string

const (
	DirectionOut Direction = "out"
	DirectionIn  Direction = "in"
)

// Transaction represents a single line of the statement.
type Transaction struct {
	At           time.Time
	ID           string
	Kind         TransactionKind
	Title        string // "Pix enviado"
	Counterparty string // "Loja Exemplo"
	Icon         string
	Direction    Direction
	AmountCents  int64 // always positive; Direction carries the sign
	// OpensReceipt marks lines that navigate to the receipt when selected.
	OpensReceipt bool
}

// SignedCents returns the amount with the sign implied by Direction.
func (t Transaction) SignedCents() int64 {
	if t.Direction == DirectionOut {
		return -t.AmountCents
	}
	return t.AmountCents
}

// GenerateHash creates a stable identifier for the line.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%d:%s:%s",
		t.At.Format(time.RFC3339),
		t.SignedCents(),
		t.Counterparty,
		t.Kind)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// StatementGroup is a day of statement lines under a date header.
type StatementGroup struct {
	Day    time.Time
	Header string // "quarta-feira, 10 de dezembro"
	Items  []Transaction
}

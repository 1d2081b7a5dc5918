package tui

import (
	"math/rand"
	"time"

	"github.com/Veraticus/pix-flow/internal/model"
	"github.com/Veraticus/pix-flow/internal/statement"
)

// State is the application data shared by every screen.
type State struct {
	// Payment is overwritten by every scan and every statement selection.
	Payment *model.PaymentData
	User    *model.UserProfile
	Receipt *model.Receipt
	// Processing is set while the payment delay runs.
	Processing bool
}

// HeaderName is the greeting shown at the top of every screen.
func (s State) HeaderName() string {
	if s.User == nil || s.User.FirstName() == "" {
		return "Olá"
	}
	return "Olá, " + s.User.FirstName()
}

// statementBook rebuilds the extrato on every visit.
type statementBook struct {
	now    func() time.Time
	rng    *rand.Rand
	groups []model.StatementGroup
	builds int
}

// Rebuild replaces the statement with a fresh one.
func (b *statementBook) Rebuild() {
	b.groups = statement.Build(b.now(), b.rng)
	b.builds++
}

// Groups returns the current statement.
func (b *statementBook) Groups() []model.StatementGroup {
	return b.groups
}

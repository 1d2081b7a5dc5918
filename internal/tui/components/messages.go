package components

import "github.com/Veraticus/pix-flow/internal/model"

// StatementSelectedMsg is sent when a statement line is chosen.
type StatementSelectedMsg struct {
	Transaction model.Transaction
	Index       int
}

// SetupSubmittedMsg carries a complete profile from the setup form.
type SetupSubmittedMsg struct {
	Profile model.UserProfile
}

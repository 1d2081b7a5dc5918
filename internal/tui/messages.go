package tui

import (
	"github.com/Veraticus/pix-flow/internal/model"
	"github.com/Veraticus/pix-flow/internal/scanner"
)

// Profile messages.
type profileLoadedMsg struct {
	err     error
	profile *model.UserProfile
}

type profileSavedMsg struct {
	err     error
	profile model.UserProfile
}

// scanDecodedMsg arrives after the session that produced it was stopped.
type scanDecodedMsg struct {
	result scanner.Result
}

// paymentProcessedMsg fires when the processing delay elapses.
type paymentProcessedMsg struct{}

package tui

import (
	"context"
	"time"

	"github.com/Veraticus/pix-flow/internal/common"
	"github.com/Veraticus/pix-flow/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

const storeTimeout = 5 * time.Second

// loadProfile reads the stored profile.
func (m Model) loadProfile() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		if store == nil {
			return profileLoadedMsg{err: common.ErrNotFound}
		}

		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		profile, err := store.LoadProfile(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

// saveProfile persists a profile from the setup form.
func (m Model) saveProfile(p model.UserProfile) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		if store == nil {
			return profileSavedMsg{profile: p}
		}

		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		if err := store.SaveProfile(ctx, &p); err != nil {
			return profileSavedMsg{err: err}
		}
		common.LogInfo("Profile saved", common.Fields{"name": p.FirstName()})
		return profileSavedMsg{profile: p}
	}
}

// waitForPayment fires paymentProcessedMsg after d.
func waitForPayment(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return paymentProcessedMsg{}
	})
}

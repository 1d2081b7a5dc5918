package model

import (
	"fmt"
	"strings"

	"github.com/Veraticus/pix-flow/internal/common"
)

// MissingFieldsMessage is shown when the setup form is submitted incomplete.
const MissingFieldsMessage = "Por favor, preencha todos os campos."

// UserProfile is the single durable record of the application.
type UserProfile struct {
	Name  string `json:"name"`
	TaxID string `json:"cpf"`
}

// NewUserProfile trims name and taxID and rejects blank values. Only
// presence is checked; the CPF format is not validated.
func NewUserProfile(name, taxID string) (UserProfile, error) {
	p := UserProfile{
		Name:  strings.TrimSpace(name),
		TaxID: strings.TrimSpace(taxID),
	}
	if p.Name == "" || p.TaxID == "" {
		return UserProfile{}, common.NewUserError(MissingFieldsMessage, fmt.Errorf("%w: name or cpf", common.ErrEmptyField))
	}
	return p, nil
}

// FirstName returns the first word of the user's name.
func (u UserProfile) FirstName() string {
	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

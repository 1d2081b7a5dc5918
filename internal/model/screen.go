package model

import "fmt"

// ScreenID identifies one of the fixed views of the application.
type ScreenID string

const (
	ScreenHome           ScreenID = "home"
	ScreenScanner        ScreenID = "scanner"
	ScreenPaymentDetails ScreenID = "payment-details"
	ScreenReceipt        ScreenID = "receipt"
	ScreenExtrato        ScreenID = "extrato"
	// ScreenUserSetup is the overlay shown until a profile exists. It is not
	// part of the single-active-screen set.
	ScreenUserSetup ScreenID = "user-setup-modal"
)

// Screens returns the non-modal screens in display order.
func Screens() []ScreenID {
	return []ScreenID{
		ScreenHome,
		ScreenScanner,
		ScreenPaymentDetails,
		ScreenReceipt,
		ScreenExtrato,
	}
}

// IsModal reports whether the screen is an overlay.
func (s ScreenID) IsModal() bool {
	return s == ScreenUserSetup
}

// Title returns the heading shown for the screen.
func (s ScreenID) Title() string {
	switch s {
	case ScreenHome:
		return "Início"
	case ScreenScanner:
		return "Pagar com Pix"
	case ScreenPaymentDetails:
		return "Confirmar pagamento"
	case ScreenReceipt:
		return "Comprovante"
	case ScreenExtrato:
		return "Extrato"
	case ScreenUserSetup:
		return "Bem-vindo"
	default:
		return string(s)
	}
}

// ParseScreenID converts a string into a known ScreenID.
func ParseScreenID(s string) (ScreenID, error) {
	id := ScreenID(s)
	if id == ScreenUserSetup {
		return id, nil
	}
	for _, known := range Screens() {
		if known == id {
			return id, nil
		}
	}
	return "", fmt.Errorf("unknown screen %q", s)
}

package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Normal     lipgloss.Style
	Bold       lipgloss.Style
	Header     lipgloss.Style
	Selected   lipgloss.Style
	AmountOut  lipgloss.Style
	AmountIn   lipgloss.Style
	Label      lipgloss.Style
	Alert      lipgloss.Style
	Box        lipgloss.Style
	RoundedBox lipgloss.Style
	Modal      lipgloss.Style
	Overlay    lipgloss.Style
	Viewfinder lipgloss.Style
	StatusBar  lipgloss.Style
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Foreground lipgloss.Color
	Background lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
}

// Default is the orange-on-dark banking theme.
var Default = Theme{
	// Colors
	Primary:    lipgloss.Color("#ff7a00"),
	Secondary:  lipgloss.Color("#ffb366"),
	Success:    lipgloss.Color("#10b981"),
	Error:      lipgloss.Color("#ef4444"),
	Background: lipgloss.Color("#1a1a1a"),
	Foreground: lipgloss.Color("#fafafa"),
	Border:     lipgloss.Color("#404040"),
	Muted:      lipgloss.Color("#737373"),

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#1a1a1a")).
		Background(lipgloss.Color("#ff7a00")).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#ff7a00")).
		Foreground(lipgloss.Color("#1a1a1a")).
		Bold(true),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
	Alert: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),

	// Amounts
	AmountOut: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	AmountIn: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")).
		Bold(true),

	// Component styles
	Box: lipgloss.NewStyle().
		Padding(1, 2),
	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(1, 2),
	Modal: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("#ff7a00")).
		Padding(1, 3),
	Overlay: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#ffb366")).
		Padding(1, 4),
	Viewfinder: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color("#ff7a00")).
		Align(lipgloss.Center, lipgloss.Center),
	StatusBar: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
}

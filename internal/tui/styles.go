package tui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	ColorOrange = lipgloss.Color("#E67E22")
	ColorNavy   = lipgloss.Color("#2C3E50")
	ColorWhite  = lipgloss.Color("#FFFFFF")
	ColorGray   = lipgloss.Color("#7F8C8D")
	ColorDim    = lipgloss.Color("240")
	ColorRed    = lipgloss.Color("#FF6666")
	ColorGreen  = lipgloss.Color("#44FF44")
	ColorAmber  = lipgloss.Color("#F59E0B")
	ColorSlate  = lipgloss.Color("#64748B")
	ColorBronze = lipgloss.Color("#D97706")
	ColorViolet = lipgloss.Color("#8B5CF6")
	ColorCyan   = lipgloss.Color("#06B6D4")
	ColorGreenD = lipgloss.Color("#10B981")
	ColorRedO   = lipgloss.Color("#F97316")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(ColorOrange).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Background(ColorNavy).
			Padding(0, 1)

	clockStyle = lipgloss.NewStyle().
			Foreground(ColorOrange).
			Background(ColorNavy).
			Bold(true).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorDim)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorOrange).
			Bold(true)

	bodyStyle = lipgloss.NewStyle().
			Foreground(ColorWhite)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	readyStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray).
			Padding(0, 1)

	slideStyle = lipgloss.NewStyle().
			Padding(1, 2)

	buttonStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Background(ColorOrange).
			Bold(true).
			Padding(0, 3)
)

// badge renders text as a solid colored chip.
func badge(text string, bg lipgloss.Color) string {
	return lipgloss.NewStyle().
		Foreground(ColorWhite).
		Background(bg).
		Bold(true).
		Padding(0, 1).
		Render(text)
}

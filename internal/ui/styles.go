package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"})

	labelStyle = lipgloss.NewStyle().
			Width(18).
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#AAAAAA"})

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#888888", Dark: "#888888"})

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#D75F00", Dark: "#FF8C00"})

	focusedLabelStyle = selectedStyle.Width(18)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#A00000", Dark: "#FF8080"})
)

// Plot layers: orange for the primary series, blue for the reference, red
// for derived values.
var (
	orangeLayer = lipgloss.NewStyle().Foreground(lipgloss.Color("#FA9600"))
	blueLayer   = lipgloss.NewStyle().Foreground(lipgloss.Color("#0096FA"))
	redLayer    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FA0000"))
	greyLayer   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	greenLayer  = lipgloss.NewStyle().Foreground(lipgloss.Color("#55FF00"))
	purpleLayer = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF00FF"))
)

package ui

import "github.com/charmbracelet/lipgloss"

// MeshStack color palette, tuned for dark terminal backgrounds.
const (
	ColorWhite = "#FFFFFF"

	// Gray scale
	ColorGray100 = "#F4F6F8"
	ColorGray300 = "#CBD2DB"
	ColorGray400 = "#9AA3B0"
	ColorGray500 = "#6B7482"
	ColorGray600 = "#4D545F"
	ColorGray800 = "#232831"

	// Teal (primary accent)
	ColorTeal300 = "#7DE0D3"
	ColorTeal400 = "#4FD1C0"
	ColorTeal500 = "#2BB7A6"
	ColorTeal600 = "#1E9487"

	// Violet (secondary accent)
	ColorViolet300 = "#C3B2FF"
	ColorViolet400 = "#A487FF"
	ColorViolet500 = "#8257FF"

	// Green
	ColorGreen400 = "#63D78E"

	// Red
	ColorRed400 = "#F87171"

	// Yellow
	ColorYellow400 = "#F9C424"
)

var (
	// TitleStyle - for main headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorTeal500))

	// SuccessStyle - for success messages
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorGreen400))

	// ErrorStyle - for error messages
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorRed400))

	// WarningStyle - for warnings
	WarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorYellow400))

	// DimStyle - for secondary text
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray500))

	// StepStyle - for step instructions
	StepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorTeal300))

	// CommandStyle - for CLI commands shown to the user
	CommandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorTeal400))

	// BoldStyle - plain bold text
	BoldStyle = lipgloss.NewStyle().Bold(true)

	// CodeStyle - inline code fragments
	CodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorViolet300))

	// BoxStyle - bordered content boxes
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorTeal500)).
			Padding(0, 1)
)

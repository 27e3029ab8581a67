package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/pokeselect/internal/version"
)

// Application branding constants
const (
	AppName   = "POKESELECT"
	GitHubURL = "github.com/muurk/pokeselect"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 40 // Minimum supported terminal width
	DefaultWidth     = 80 // Used until the first tea.WindowSizeMsg
	DefaultHeight    = 24
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple
	WarningColor = lipgloss.Color("#FFA500") // Orange

	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor = lipgloss.Color("#43BF6D") // Green
)

// Common styles
var (
	// Label above the field
	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Option style (not active)
	OptionStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(TextColor)

	// Option style (active)
	ActiveOptionStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	// Informational item when nothing matches
	EmptyStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(SubtleColor).
			Italic(true)

	// Suggestion hint below the empty item
	HintStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(WarningColor)

	// Focused button style
	FocusedButtonStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 2)

	// Blurred button style
	BlurredButtonStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Padding(0, 2)
)

// InputBoxStyle returns the border around the text field. The border colour
// shows whether the field owns focus.
func InputBoxStyle(width int, focused bool) lipgloss.Style {
	color := SubtleColor
	if focused {
		color = BorderColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Width(width - 2)
}

// RenderOption renders one listbox row with the selection indicator
func RenderOption(text string, active bool) string {
	if active {
		return ActiveOptionStyle.Render("→ " + text)
	}
	return OptionStyle.Render(text)
}

// RenderButton renders a push button
func RenderButton(text string, focused bool) string {
	if focused {
		return FocusedButtonStyle.Render(text)
	}
	return BlurredButtonStyle.Render("[ " + text + " ]")
}

// BuildHeaderContent creates header content with app name and GitHub URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// containerTop is the number of terminal rows above the content area: the
// outer border, the header line and the header's bottom border.
const containerTop = 3

// containerLeft is the number of terminal columns left of the content area.
const containerLeft = 1

// RenderApplicationContainer wraps content with the application header and a
// footer holding the help text, filling the terminal.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(BorderColor).
		Width(terminalWidth-4). // Leave room for outer border
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - 4)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(BuildFooterContent(footerText)),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(innerContent)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}

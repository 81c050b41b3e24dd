package components

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			MarginBottom(1)

	HintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	ReportPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("63")).
				Padding(0, 1)
)

// Header is the heading shown above every wizard screen.
const Header = "医療問診票"

// Title renders the header and the screen name.
func Title(screen string) string {
	return TitleStyle.Render(Header + " - " + screen)
}

// Status renders a status line in the success or error style.
func Status(text string, failed bool) string {
	if text == "" {
		return ""
	}
	if failed {
		return ErrorStyle.Render(text)
	}
	return SuccessStyle.Render(text)
}

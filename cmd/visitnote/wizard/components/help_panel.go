package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/visitnote/cmd/visitnote/wizard/help"
)

const (
	panelMinWidth    = 20
	panelPlaceholder = "項目を選択するとヘルプが表示されます"
)

var (
	panelBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	panelHeading = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63")).
			Bold(true)

	panelNote = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// HelpPanel explains the focused input of a visit screen: what to record
// and how the report prints it.
type HelpPanel struct {
	key   string
	width int
}

// NewHelpPanel returns a panel sized for an 80 column terminal.
func NewHelpPanel() *HelpPanel {
	return &HelpPanel{width: 60}
}

// SetField selects the input by its form key ("hospital/1" and the like).
func (h *HelpPanel) SetField(key string) {
	h.key = key
}

// Field returns the key of the input being explained.
func (h *HelpPanel) Field() string {
	return h.key
}

// SetSize resizes the panel. Only the width is used; the text wraps.
func (h *HelpPanel) SetSize(width, _ int) {
	h.width = width
}

// View renders the help of the focused input, or a hint when none is known.
func (h *HelpPanel) View() string {
	style := panelBorder.Width(max(h.width-4, panelMinWidth))

	text, ok := help.Lookup(h.key)
	if !ok {
		return style.Render(panelNote.Render(panelPlaceholder))
	}

	lines := []string{panelHeading.Render(text.Title), text.Description}
	if text.Details != "" {
		lines = append(lines, "", panelNote.Render(text.Details))
	}
	return style.Render(strings.Join(lines, "\n"))
}

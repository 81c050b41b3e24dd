package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/visitnote/cmd/visitnote/wizard/components"
)

// SummaryAction represents the action selected on the summary screen
type SummaryAction string

const (
	// SummaryActionCopy copies the report to the clipboard
	SummaryActionCopy SummaryAction = "copy"
	// SummaryActionSave writes the visit form to a file
	SummaryActionSave SummaryAction = "save"
	// SummaryActionEdit returns to the first screen
	SummaryActionEdit SummaryAction = "edit"
	// SummaryActionFinish leaves the wizard and prints the report
	SummaryActionFinish SummaryAction = "finish"
)

const (
	reportHeading  = "出力結果"
	emptyReport    = "(入力がありません)"
	summaryHint    = "Enter: 実行 | PgUp/PgDn: スクロール | Esc: 前の画面 | Ctrl+C: 中止"
	minReportLines = 5
)

// SummaryScreen shows the generated report and the actions available on it.
type SummaryScreen struct {
	form      *huh.Form
	viewport  viewport.Model
	report    string
	action    SummaryAction
	status    string
	failed    bool
	width     int
	height    int
	done      bool
	back      bool
	cancelled bool
}

// NewSummaryScreen creates a summary screen for report. status is the result
// of the previous action, if any.
func NewSummaryScreen(report, status string, failed bool) *SummaryScreen {
	s := &SummaryScreen{
		report: report,
		action: SummaryActionCopy,
		status: status,
		failed: failed,
	}

	s.viewport = viewport.New(60, reportHeight(report, 0))
	s.viewport.SetContent(s.content())

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[SummaryAction]().
				Key("action").
				Title("操作").
				Options(
					huh.NewOption("コピー", SummaryActionCopy),
					huh.NewOption("保存", SummaryActionSave),
					huh.NewOption("修正", SummaryActionEdit),
					huh.NewOption("終了", SummaryActionFinish),
				).
				Value(&s.action),
		),
	).WithShowHelp(false)

	return s
}

func (s *SummaryScreen) content() string {
	if s.report == "" {
		return components.HintStyle.Render(emptyReport)
	}
	return s.report
}

// reportHeight returns the viewport height for report on a terminal of the
// given height. A zero terminal height means unknown.
func reportHeight(report string, terminal int) int {
	lines := strings.Count(report, "\n") + 1
	limit := terminal - 12
	if terminal == 0 || limit < minReportLines {
		limit = 20
	}
	if lines > limit {
		lines = limit
	}
	if lines < minReportLines {
		lines = minReportLines
	}
	return lines
}

// Init implements tea.Model
func (s *SummaryScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *SummaryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			s.back = true
			return s, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			s.viewport, cmd = s.viewport.Update(msg)
			return s, cmd
		}
	case tea.MouseMsg:
		var cmd tea.Cmd
		s.viewport, cmd = s.viewport.Update(msg)
		return s, cmd
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		if w := msg.Width - 4; w > 20 {
			s.viewport.Width = w
		}
		s.viewport.Height = reportHeight(s.report, msg.Height)
	}

	model, cmd := s.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *SummaryScreen) View() string {
	if s.cancelled {
		return "中止しました。\n"
	}

	parts := []string{
		components.Title("確認"),
		components.SubtitleStyle.Render(reportHeading),
		components.ReportPanelStyle.Render(s.viewport.View()),
		"",
		s.form.View(),
	}
	if status := components.Status(s.status, s.failed); status != "" {
		parts = append(parts, status)
	}
	parts = append(parts, "", components.HintStyle.Render(summaryHint))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Report returns the text shown on the screen
func (s *SummaryScreen) Report() string {
	return s.report
}

// Action returns the selected action
func (s *SummaryScreen) Action() SummaryAction {
	return s.action
}

// Done returns true if an action was selected
func (s *SummaryScreen) Done() bool {
	return s.done
}

// Back returns true if the user asked for the previous screen
func (s *SummaryScreen) Back() bool {
	return s.back
}

// Cancelled returns true if the user cancelled
func (s *SummaryScreen) Cancelled() bool {
	return s.cancelled
}

// Package screens contains the steps of the visit wizard.
package screens

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/visitnote/cmd/visitnote/wizard/components"
	"github.com/mrsinham/visitnote/internal/form"
)

const formHint = "Tab: 次へ | Shift+Tab: 前へ | Enter: 決定 | Esc: 前の画面 | Ctrl+C: 中止"

// FormScreen is a wizard step backed by a huh form. Fields are bound to
// local drafts; the visit form itself only changes when the wizard applies
// the screen's edits after submission.
type FormScreen struct {
	name      string
	form      *huh.Form
	helpPanel *components.HelpPanel
	edits     func() form.Batch
	width     int
	height    int
	done      bool
	back      bool
	cancelled bool
}

func newFormScreen(name string, f *huh.Form, edits func() form.Batch) *FormScreen {
	return &FormScreen{
		name:      name,
		form:      f.WithShowHelp(false).WithShowErrors(true),
		helpPanel: components.NewHelpPanel(),
		edits:     edits,
	}
}

// Init implements tea.Model
func (s *FormScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *FormScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			s.back = true
			return s, nil
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.helpPanel.SetSize(msg.Width/2, msg.Height/3)
	}

	// Update form
	model, cmd := s.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		s.form = f
	}

	// Update help panel based on focused field
	if focused := s.form.GetFocusedField(); focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *FormScreen) View() string {
	if s.cancelled {
		return "中止しました。\n"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.Title(s.name),
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		components.HintStyle.Render(formHint),
	)
}

// Name returns the screen heading
func (s *FormScreen) Name() string {
	return s.name
}

// Done returns true if the form was completed
func (s *FormScreen) Done() bool {
	return s.done
}

// Back returns true if the user asked for the previous screen
func (s *FormScreen) Back() bool {
	return s.back
}

// Cancelled returns true if the user cancelled
func (s *FormScreen) Cancelled() bool {
	return s.cancelled
}

// Edits returns the changes made on this screen, in application order
func (s *FormScreen) Edits() form.Batch {
	return s.edits()
}

// validateDate accepts an empty value or a YYYY-MM-DD date.
func validateDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("日付は YYYY-MM-DD 形式で入力してください")
	}
	return nil
}

func checkOptions() []huh.Option[form.Check] {
	return []huh.Option[form.Check]{
		huh.NewOption("未選択", form.CheckUnset),
		huh.NewOption(form.CheckYes.Label(), form.CheckYes),
		huh.NewOption(form.CheckNo.Label(), form.CheckNo),
	}
}

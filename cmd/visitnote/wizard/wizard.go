package wizard

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/mrsinham/visitnote/cmd/visitnote/wizard/screens"
	"github.com/mrsinham/visitnote/internal/clipboard"
	"github.com/mrsinham/visitnote/internal/form"
	"github.com/mrsinham/visitnote/internal/report"
	"github.com/mrsinham/visitnote/internal/visitfile"
)

// Wizard is the main orchestrator for the wizard interface.
type Wizard struct {
	state form.State

	// Current phase
	phase Phase

	// Screen instances
	formScreen    *screens.FormScreen
	summaryScreen *screens.SummaryScreen
	saveScreen    *screens.FormScreen

	copier   clipboard.Copier
	logger   *zap.Logger
	savePath string

	// Result of the last summary action
	status string
	failed bool
	// A copy or save command is running
	pending bool

	// Window size
	width  int
	height int

	// Final state
	cancelled bool
	finished  bool
}

// NewWizard creates a new wizard positioned on the first screen.
func NewWizard(opts Options) *Wizard {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	copier := opts.Copier
	if copier == nil {
		copier = clipboard.System{}
	}

	w := &Wizard{
		state:    opts.State,
		copier:   copier,
		logger:   logger,
		savePath: opts.SavePath,
	}
	w.enter(PhaseBasics)
	return w
}

// State returns the current visit form.
func (w *Wizard) State() form.State {
	return w.state
}

// Phase returns the current phase.
func (w *Wizard) Phase() Phase {
	return w.phase
}

// Report returns the report for the current visit form.
func (w *Wizard) Report() string {
	return report.Build(w.state)
}

// Finished returns true if the user left through 終了.
func (w *Wizard) Finished() bool {
	return w.finished
}

// Cancelled returns true if the user aborted the wizard.
func (w *Wizard) Cancelled() bool {
	return w.cancelled
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.formScreen.Init()
}

// enter builds the screen of phase p from the current form.
func (w *Wizard) enter(p Phase) {
	w.phase = p
	w.logger.Debug("entering phase", zap.Stringer("phase", p))

	switch p {
	case PhaseBasics:
		w.formScreen = screens.NewBasicsScreen(w.state)
	case PhaseMedication:
		w.formScreen = screens.NewMedicationScreen(w.state)
	case PhaseLastVisit:
		w.formScreen = screens.NewConsultationScreen(w.state, form.VisitLast)
	case PhaseNextVisit:
		w.formScreen = screens.NewConsultationScreen(w.state, form.VisitNext)
	case PhaseInfo:
		w.formScreen = screens.NewInfoScreen(w.state)
	case PhaseSummary:
		w.summaryScreen = screens.NewSummaryScreen(w.Report(), w.status, w.failed)
	case PhaseSave:
		w.saveScreen = screens.NewSaveScreen(&w.savePath)
	}
}

// transition enters phase p and returns the commands starting its screen.
func (w *Wizard) transition(p Phase) (tea.Model, tea.Cmd) {
	w.enter(p)

	var init tea.Cmd
	switch p {
	case PhaseSummary:
		init = w.summaryScreen.Init()
	case PhaseSave:
		init = w.saveScreen.Init()
	default:
		init = w.formScreen.Init()
	}

	// New screens learn the terminal size from a replayed resize
	if w.width > 0 {
		size := tea.WindowSizeMsg{Width: w.width, Height: w.height}
		return w, tea.Batch(init, func() tea.Msg { return size })
	}
	return w, init
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
	case copiedMsg:
		w.pending = false
		w.status, w.failed = clipboard.Message(msg.err), msg.err != nil
		if msg.err != nil {
			w.logger.Warn("copy failed", zap.Error(msg.err))
		}
		return w.transition(PhaseSummary)
	case savedMsg:
		w.pending = false
		if msg.err != nil {
			w.logger.Error("save failed", zap.String("path", msg.path), zap.Error(msg.err))
			w.status, w.failed = fmt.Sprintf("保存に失敗しました: %v", msg.err), true
		} else {
			w.logger.Info("visit saved", zap.String("path", msg.path), zap.Int("bytes", msg.bytes))
			w.status = fmt.Sprintf("保存しました: %s (%s)", msg.path, humanize.Bytes(uint64(msg.bytes)))
			w.failed = false
		}
		return w.transition(PhaseSummary)
	}

	switch w.phase {
	case PhaseSummary:
		return w.updateSummary(msg)
	case PhaseSave:
		return w.updateSave(msg)
	default:
		return w.updateForm(msg)
	}
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch w.phase {
	case PhaseSummary:
		return w.summaryScreen.View()
	case PhaseSave:
		return w.saveScreen.View()
	default:
		return w.formScreen.View()
	}
}

// updateForm handles the input screens, from 基本情報 to 情報.
func (w *Wizard) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.formScreen.Update(msg)
	if fs, ok := model.(*screens.FormScreen); ok {
		w.formScreen = fs
	}

	if w.formScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.formScreen.Back() {
		// Leaving backwards discards the screen's drafts
		if w.phase == PhaseBasics {
			return w.transition(PhaseBasics)
		}
		return w.transition(w.phase - 1)
	}

	if w.formScreen.Done() {
		edits := w.formScreen.Edits()
		w.state = form.Apply(w.state, edits)
		w.logger.Debug("screen completed",
			zap.Stringer("phase", w.phase),
			zap.Int("edits", len(edits)))
		w.status, w.failed = "", false
		return w.transition(w.phase + 1)
	}

	return w, cmd
}

// updateSummary handles updates in the summary phase.
func (w *Wizard) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.summaryScreen.Update(msg)
	if ss, ok := model.(*screens.SummaryScreen); ok {
		w.summaryScreen = ss
	}

	if w.summaryScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.summaryScreen.Back() {
		return w.transition(PhaseInfo)
	}

	if w.summaryScreen.Done() {
		return w.runAction(w.summaryScreen.Action(), cmd)
	}

	return w, cmd
}

// runAction performs a summary action. The completed summary stays on
// screen until a running copy reports back, so it is started only once.
func (w *Wizard) runAction(action screens.SummaryAction, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if w.pending {
		return w, cmd
	}

	switch action {
	case screens.SummaryActionCopy:
		w.pending = true
		return w, w.copyReport(w.summaryScreen.Report())
	case screens.SummaryActionSave:
		return w.transition(PhaseSave)
	case screens.SummaryActionEdit:
		w.status, w.failed = "", false
		return w.transition(PhaseBasics)
	case screens.SummaryActionFinish:
		w.finished = true
		return w, tea.Quit
	}
	return w, cmd
}

// updateSave handles updates in the save phase.
func (w *Wizard) updateSave(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.saveScreen.Update(msg)
	if ss, ok := model.(*screens.FormScreen); ok {
		w.saveScreen = ss
	}

	if w.saveScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.saveScreen.Back() {
		return w.transition(PhaseSummary)
	}

	if w.saveScreen.Done() && !w.pending {
		w.pending = true
		return w, w.saveState(w.savePath)
	}

	return w, cmd
}

func (w *Wizard) copyReport(text string) tea.Cmd {
	copier := w.copier
	return func() tea.Msg {
		return copiedMsg{err: copier.Copy(text)}
	}
}

func (w *Wizard) saveState(path string) tea.Cmd {
	state := w.state
	return func() tea.Msg {
		n, err := visitfile.Save(path, state)
		return savedMsg{path: path, bytes: n, err: err}
	}
}

// Run starts the interactive wizard. It returns the report when the user
// leaves through 終了 and an empty string when the wizard was aborted.
func Run(opts Options) (string, error) {
	wizard := NewWizard(opts)
	p := tea.NewProgram(wizard, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running wizard: %w", err)
	}

	// Check final state
	if w, ok := finalModel.(*Wizard); ok && w.finished {
		return w.Report(), nil
	}
	return "", nil
}

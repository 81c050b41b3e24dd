// Package wizard provides an interactive TUI for filling in a visit form.
package wizard

import (
	"github.com/mrsinham/visitnote/internal/clipboard"
	"github.com/mrsinham/visitnote/internal/form"
	"go.uber.org/zap"
)

// Phase represents the current phase/screen of the wizard.
type Phase int

const (
	PhaseBasics Phase = iota
	PhaseMedication
	PhaseLastVisit
	PhaseNextVisit
	PhaseInfo
	PhaseSummary
	PhaseSave
)

var phaseNames = map[Phase]string{
	PhaseBasics:     "basics",
	PhaseMedication: "medication",
	PhaseLastVisit:  "last_visit",
	PhaseNextVisit:  "next_visit",
	PhaseInfo:       "info",
	PhaseSummary:    "summary",
	PhaseSave:       "save",
}

func (p Phase) String() string {
	return phaseNames[p]
}

// Options configure a wizard run.
type Options struct {
	// State is the form the wizard starts from. The zero value is not a
	// valid form; use form.New.
	State form.State
	// Copier receives the report when the user picks コピー.
	Copier clipboard.Copier
	// Logger is used for diagnostics. Nil disables logging.
	Logger *zap.Logger
	// SavePath is the default destination offered by 保存.
	SavePath string
}

// copiedMsg reports the result of a clipboard copy.
type copiedMsg struct {
	err error
}

// savedMsg reports the result of writing the form to disk.
type savedMsg struct {
	path  string
	bytes int
	err   error
}

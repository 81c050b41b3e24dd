// Package report turns a visit form into the plain-text report that is
// pasted into the external record system.
//
// The report is four blocks (top, medication, consultation, info). A block
// that yields no text is dropped, and the remaining blocks are separated by
// a blank line.
package report

import (
	"strings"

	"github.com/mrsinham/visitnote/internal/form"
)

const (
	blockSep = "\n\n"
	indent   = "\n  "
)

// Build returns the report text for s.
func Build(s form.State) string {
	return joinNonEmpty(Blocks(s), blockSep)
}

// Blocks returns the four report blocks in order. Empty blocks are returned
// as empty strings.
func Blocks(s form.State) []string {
	return []string{Top(s), Medication(s), Consultation(s), Info(s)}
}

// Top renders the basics and vitals sections.
func Top(s form.State) string {
	var sections []string
	for _, id := range form.AllSections() {
		var lines []string
		for _, f := range s.Section(id).Fields {
			if f.Value == "" {
				continue
			}
			line := f.Title + ": " + f.Value
			if f.Title == "Sp02" {
				line += "%"
			}
			lines = append(lines, line)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	return joinNonEmpty(sections, blockSep)
}

// Medication renders the checklist items.
func Medication(s form.State) string {
	var items []string
	for _, id := range form.AllChecklists() {
		item := s.Checklist(id)
		if item.Selected == "" && item.OtherText == "" {
			continue
		}
		text := item.Title + ": " + item.Selected
		if item.OtherText != "" && item.OtherLabel != "" {
			text += "\n" + item.OtherLabel + ": " + item.OtherText
		}
		items = append(items, text)
	}
	return strings.Join(items, "\n")
}

// Consultation renders the last and next visit items.
func Consultation(s form.State) string {
	var items []string
	for _, id := range form.AllVisits() {
		item := s.Consultation(id)
		var entries []string
		for _, e := range item.Entries {
			entries = append(entries, hospitalEntry(e))
		}
		body := joinNonEmpty(entries, blockSep)
		if body == "" {
			continue
		}
		items = append(items, "【"+item.Title+"】\n"+body)
	}
	return strings.Join(items, blockSep)
}

func hospitalEntry(e form.HospitalEntry) string {
	var lines []string
	for _, f := range e.Fields {
		if line, ok := consultationLine(f); ok {
			lines = append(lines, line)
		}
	}

	var parts []string
	if e.HospitalName != "" {
		parts = append(parts, "病院名: "+e.HospitalName)
	}
	if len(lines) > 0 {
		parts = append(parts, strings.Join(lines, indent))
	}
	if e.Memo != "" {
		parts = append(parts, "メモ: "+e.Memo)
	}
	if len(parts) == 0 {
		return ""
	}
	return e.Name + indent + strings.Join(parts, indent)
}

// consultationLine renders one entry line. A なし answer without text is
// omitted even though its label would print; see DESIGN.md.
func consultationLine(f form.ConsultationField) (string, bool) {
	if f.Value == "" {
		if f.Label == form.LineDate.Label() {
			return "", false
		}
		if f.Check == form.CheckUnset || f.Check == form.CheckNo {
			return "", false
		}
	}
	// Only the outer spaces are trimmed: "処方:  あり" keeps its double space.
	return strings.TrimSpace(f.Label + ": " + f.Value + " " + f.Check.Label()), true
}

// Info renders the info items. Unlike the other blocks its lines are joined
// without blank lines.
func Info(s form.State) string {
	var lines []string
	for _, item := range s.InfoItems() {
		if item.Composite() {
			var sub []string
			for _, f := range item.Sublist {
				if f.Value != "" {
					sub = append(sub, "  - "+f.Title+": "+f.Value)
				}
			}
			if len(sub) > 0 {
				lines = append(lines, item.Title+":\n"+strings.Join(sub, "\n"))
			}
			continue
		}
		if item.Value != "" {
			lines = append(lines, item.Title+": "+item.Value)
		}
	}
	return strings.Join(lines, "\n")
}

func joinNonEmpty(parts []string, sep string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

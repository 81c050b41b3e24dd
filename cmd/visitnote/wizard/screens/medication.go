package screens

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/mrsinham/visitnote/internal/form"
)

var checklistKeys = map[form.ChecklistID]string{
	form.ChecklistAdherence:  "adherence",
	form.ChecklistDispensing: "dispensing",
}

// NewMedicationScreen edits the medication checklist items.
func NewMedicationScreen(s form.State) *FormScreen {
	ids := form.AllChecklists()
	selected := make([]string, len(ids))
	other := make([]string, len(ids))

	var groups []*huh.Group
	for i, id := range ids {
		item := s.Checklist(id)
		selected[i] = item.Selected
		other[i] = item.OtherText

		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Key(checklistKeys[id]).
				Title(item.Title).
				Options(checklistOptions(item)...).
				Value(&selected[i]),
			huh.NewText().
				Key(fmt.Sprintf("other/%d", i)).
				Title(item.OtherLabel).
				Placeholder("その他を入力").
				Lines(2).
				Value(&other[i]),
		).Title(item.Title))
	}

	return newFormScreen("薬", huh.NewForm(groups...), func() form.Batch {
		var edits form.Batch
		for i, id := range ids {
			if selected[i] != "" {
				edits = append(edits, form.SelectOption{Checklist: id, Option: selected[i]})
			}
			edits = append(edits, form.SetOtherText{Checklist: id, Text: other[i]})
		}
		return edits
	})
}

// checklistOptions lists the choices of a medication item. "(未選択)" is
// only offered while nothing is selected: a selection can be changed but
// not cleared.
func checklistOptions(item form.ChecklistItem) []huh.Option[string] {
	var options []huh.Option[string]
	if item.Selected == "" {
		options = append(options, huh.NewOption("(未選択)", ""))
	}
	for _, o := range item.Options {
		options = append(options, huh.NewOption(o, o))
	}
	return options
}

package screens

import (
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/visitnote/internal/form"
)

var infoKeys = map[form.InfoID]string{
	form.InfoMental:   "mental",
	form.InfoPhysical: "physical",
	form.InfoDaytime:  "daytime",
}

var livingKeys = map[form.LivingID]string{
	form.LivingHygiene:     "hygiene",
	form.LivingMeals:       "meals",
	form.LivingEnvironment: "environment",
}

// NewInfoScreen edits the info items and the 生活状況 sub-entries.
func NewInfoScreen(s form.State) *FormScreen {
	info := make(map[form.InfoID]*string)
	for _, id := range form.AllInfo() {
		v := s.Info(id).Value
		info[id] = &v
	}
	living := make(map[form.LivingID]*string)
	for _, id := range form.AllLiving() {
		v := s.Living(id).Value
		living[id] = &v
	}
	expanded := s.DetailExpanded()

	text := func(id form.InfoID) huh.Field {
		return huh.NewText().
			Key(infoKeys[id]).
			Title(id.Title()).
			Placeholder("入力").
			Lines(3).
			Value(info[id])
	}

	var livingFields []huh.Field
	for _, id := range form.AllLiving() {
		livingFields = append(livingFields, huh.NewInput().
			Key(livingKeys[id]).
			Title(id.Title()).
			Placeholder("入力").
			Value(living[id]))
	}

	f := huh.NewForm(
		huh.NewGroup(
			text(form.InfoMental),
			text(form.InfoPhysical),
			huh.NewConfirm().
				Key("show_details").
				Title(form.LivingTitle).
				Description("詳細を入力しますか?").
				Affirmative("詳細を入力").
				Negative("閉じる").
				Value(&expanded),
		).Title("情報"),
		huh.NewGroup(livingFields...).
			Title(form.LivingTitle).
			WithHideFunc(func() bool { return !expanded }),
		huh.NewGroup(text(form.InfoDaytime)).Title("情報"),
	)

	return newFormScreen("情報", f, func() form.Batch {
		edits := form.Batch{form.SetDetailExpanded{Expanded: expanded}}
		for _, id := range form.AllInfo() {
			edits = append(edits, form.SetInfo{Info: id, Value: *info[id]})
		}
		for _, id := range form.AllLiving() {
			edits = append(edits, form.SetLiving{Entry: id, Value: *living[id]})
		}
		return edits
	})
}

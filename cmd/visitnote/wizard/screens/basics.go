package screens

import (
	"github.com/charmbracelet/huh"

	"github.com/mrsinham/visitnote/internal/form"
)

var fieldKeys = map[form.FieldID]string{
	form.FieldDate:          "date",
	form.FieldGAF:           "gaf",
	form.FieldTemperature:   "temperature",
	form.FieldBloodPressure: "blood_pressure",
	form.FieldPulse:         "pulse",
	form.FieldSpO2:          "spo2",
}

var fieldPlaceholders = map[form.FieldID]string{
	form.FieldDate: "YYYY-MM-DD",
	form.FieldGAF:  "数値を入力",
	form.FieldSpO2: "数値",
}

// NewBasicsScreen edits the basics and vitals sections.
func NewBasicsScreen(s form.State) *FormScreen {
	values := make(map[form.FieldID]*string)
	var groups []*huh.Group

	for _, section := range form.AllSections() {
		var fields []huh.Field
		for _, id := range form.SectionFields(section) {
			value := s.Field(id).Value
			values[id] = &value

			input := huh.NewInput().
				Key(fieldKeys[id]).
				Title(id.Title()).
				Value(&value)
			if p, ok := fieldPlaceholders[id]; ok {
				input = input.Placeholder(p)
			} else {
				input = input.Placeholder("入力")
			}
			if id == form.FieldDate {
				input = input.Validate(validateDate)
			}
			fields = append(fields, input)
		}

		title := section.Title()
		if title == "" {
			title = "基本情報"
		}
		groups = append(groups, huh.NewGroup(fields...).Title(title))
	}

	return newFormScreen("基本情報", huh.NewForm(groups...), func() form.Batch {
		var edits form.Batch
		for _, id := range form.AllFields() {
			edits = append(edits, form.SetField{Field: id, Value: *values[id]})
		}
		return edits
	})
}

package screens

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/mrsinham/visitnote/internal/form"
)

type entryDraft struct {
	hospital     string
	date         string
	prescription form.Check
	change       form.Check
	changeDetail string
	memo         string
}

// NewConsultationScreen edits the three hospital entries of one visit.
func NewConsultationScreen(s form.State, visit form.VisitID) *FormScreen {
	departments := form.AllDepartments()
	drafts := make([]entryDraft, len(departments))

	var groups []*huh.Group
	for i, d := range departments {
		e := s.Entry(visit, d)
		drafts[i] = entryDraft{
			hospital:     e.HospitalName,
			date:         e.Field(form.LineDate).Value,
			prescription: e.Field(form.LinePrescription).Check,
			change:       e.Field(form.LineChange).Check,
			changeDetail: e.Field(form.LineChange).Value,
			memo:         e.Memo,
		}
		draft := &drafts[i]

		groups = append(groups,
			huh.NewGroup(
				huh.NewInput().
					Key(fmt.Sprintf("hospital/%d", i)).
					Title("病院名").
					Placeholder("入力").
					Value(&draft.hospital),
				huh.NewInput().
					Key(fmt.Sprintf("visit_date/%d", i)).
					Title(form.LineDate.Label()).
					Placeholder("YYYY-MM-DD").
					Validate(validateDate).
					Value(&draft.date),
				huh.NewSelect[form.Check]().
					Key(fmt.Sprintf("prescription/%d", i)).
					Title(form.LinePrescription.Label()).
					Options(checkOptions()...).
					Inline(true).
					Value(&draft.prescription),
				huh.NewSelect[form.Check]().
					Key(fmt.Sprintf("change/%d", i)).
					Title(form.LineChange.Label()).
					Options(checkOptions()...).
					Inline(true).
					Value(&draft.change),
			).Title(d.Name()),
			huh.NewGroup(
				huh.NewInput().
					Key(fmt.Sprintf("change_detail/%d", i)).
					Title("変更内容").
					Placeholder("入力").
					Value(&draft.changeDetail),
			).Title(d.Name()).WithHideFunc(func() bool {
				return draft.change != form.CheckYes
			}),
			huh.NewGroup(
				huh.NewText().
					Key(fmt.Sprintf("memo/%d", i)).
					Title("メモ").
					Lines(2).
					Value(&draft.memo),
			).Title(d.Name()),
		)
	}

	return newFormScreen(visit.Title(), huh.NewForm(groups...), func() form.Batch {
		var edits form.Batch
		for i, d := range departments {
			edits = append(edits, drafts[i].edits(visit, d)...)
		}
		return edits
	})
}

// edits returns the changes recorded by the draft of one hospital entry.
// The 変更 detail is only editable while 変更 is あり, so for any other
// answer it is emptied before the check is stored.
func (draft entryDraft) edits(visit form.VisitID, d form.DepartmentID) form.Batch {
	detail := draft.changeDetail
	if draft.change != form.CheckYes {
		detail = ""
	}
	return form.Batch{
		form.SetHospitalName{Visit: visit, Department: d, Name: draft.hospital},
		form.SetConsultationValue{Visit: visit, Department: d, Line: form.ValueDate, Value: draft.date},
		form.SetCheck{Visit: visit, Department: d, Line: form.CheckPrescription, Check: draft.prescription},
		form.SetConsultationValue{Visit: visit, Department: d, Line: form.ValueChange, Value: detail},
		form.SetCheck{Visit: visit, Department: d, Line: form.CheckChange, Check: draft.change},
		form.SetMemo{Visit: visit, Department: d, Memo: draft.memo},
	}
}

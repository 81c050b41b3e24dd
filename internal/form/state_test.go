package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew_Schema(t *testing.T) {
	s := New()

	basics := s.Section(SectionBasics)
	if basics.Title != "" {
		t.Errorf("Expected untitled basics section, got %q", basics.Title)
	}
	if diff := cmp.Diff([]KeyValueField{{Title: "日付"}, {Title: "GAF"}}, basics.Fields); diff != "" {
		t.Errorf("basics fields mismatch (-want +got):\n%s", diff)
	}

	vitals := s.Section(SectionVitals)
	if vitals.Title != "バイタル値" {
		t.Errorf("Expected バイタル値, got %q", vitals.Title)
	}
	want := []KeyValueField{{Title: "体温"}, {Title: "血圧"}, {Title: "脈"}, {Title: "Sp02"}}
	if diff := cmp.Diff(want, vitals.Fields); diff != "" {
		t.Errorf("vitals fields mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_Checklists(t *testing.T) {
	s := New()

	adherence := s.Checklist(ChecklistAdherence)
	if adherence.Title != "内服薬服用状況" {
		t.Errorf("Expected 内服薬服用状況, got %q", adherence.Title)
	}
	if diff := cmp.Diff([]string{"全て服用済", "概ね服用済み(60%)", "服用忘れあり"}, adherence.Options); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
	if adherence.OtherLabel != "その他" {
		t.Errorf("Expected other label その他, got %q", adherence.OtherLabel)
	}

	dispensing := s.Checklist(ChecklistDispensing)
	if dispensing.Title != "服薬セット" {
		t.Errorf("Expected 服薬セット, got %q", dispensing.Title)
	}
	if diff := cmp.Diff([]string{"1週間分", "次回訪問日まで", "不足分のみ"}, dispensing.Options); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestChecklist_OptionsAreCopies(t *testing.T) {
	s := New()
	item := s.Checklist(ChecklistAdherence)
	item.Options[0] = "changed"

	if got := s.Checklist(ChecklistAdherence).Options[0]; got != "全て服用済" {
		t.Errorf("schema options were modified through a read view: %q", got)
	}
	if !HasOption(ChecklistAdherence, "全て服用済") {
		t.Error("HasOption lost the original option")
	}
	if HasOption(ChecklistAdherence, "1週間分") {
		t.Error("HasOption accepted an option of another item")
	}
}

func TestNew_Consultation(t *testing.T) {
	s := New()

	titles := []string{s.Consultation(VisitLast).Title, s.Consultation(VisitNext).Title}
	if diff := cmp.Diff([]string{"最終受診日", "次回受診日"}, titles); diff != "" {
		t.Errorf("visit titles mismatch (-want +got):\n%s", diff)
	}

	for _, v := range AllVisits() {
		item := s.Consultation(v)
		var names []string
		for _, e := range item.Entries {
			names = append(names, e.Name)
			if e.Fields[LineDate].Label != "日付" || e.Fields[LinePrescription].Label != "処方" || e.Fields[LineChange].Label != "変更" {
				t.Errorf("Unexpected line labels in %s/%s: %+v", item.Title, e.Name, e.Fields)
			}
			for _, f := range e.Fields {
				if f.Check != CheckUnset || f.Value != "" {
					t.Errorf("Expected empty unset line, got %+v", f)
				}
			}
		}
		if diff := cmp.Diff([]string{"精神科", "内科", "その他"}, names); diff != "" {
			t.Errorf("department order mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestInfoItems_Order(t *testing.T) {
	s := Apply(New(), Batch{
		SetInfo{Info: InfoDaytime, Value: "デイケア"},
		SetLiving{Entry: LivingEnvironment, Value: "整頓"},
	})

	items := s.InfoItems()
	want := []InfoItem{
		{Title: "精神状態"},
		{Title: "身体状態"},
		{Title: "生活状況", Sublist: []KeyValueField{{Title: "保清"}, {Title: "食事"}, {Title: "環境", Value: "整頓"}}},
		{Title: "日中活動", Value: "デイケア"},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Errorf("info items mismatch (-want +got):\n%s", diff)
	}
	if !items[2].Composite() || items[0].Composite() {
		t.Error("Only 生活状況 should be composite")
	}
}

func TestDetailExpanded(t *testing.T) {
	s := New()
	if s.DetailExpanded() {
		t.Error("Expected details collapsed by default")
	}
	s = Apply(s, SetDetailExpanded{Expanded: true})
	if !s.DetailExpanded() {
		t.Error("Expected details expanded")
	}
}

func TestFieldID_Section(t *testing.T) {
	tests := []struct {
		field FieldID
		want  SectionID
	}{
		{FieldDate, SectionBasics},
		{FieldGAF, SectionBasics},
		{FieldTemperature, SectionVitals},
		{FieldSpO2, SectionVitals},
	}
	for _, tc := range tests {
		if got := tc.field.Section(); got != tc.want {
			t.Errorf("%s.Section() = %v, want %v", tc.field.Title(), got, tc.want)
		}
	}
}

func TestLineAddressing(t *testing.T) {
	if CheckPrescription.Line() != LinePrescription || CheckChange.Line() != LineChange {
		t.Error("CheckLine addresses the wrong line")
	}
	if ValueDate.Line() != LineDate || ValueChange.Line() != LineChange {
		t.Error("ValueLine addresses the wrong line")
	}
}

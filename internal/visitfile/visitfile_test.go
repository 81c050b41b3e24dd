package visitfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsinham/visitnote/internal/form"
	"github.com/mrsinham/visitnote/internal/report"
)

const sampleYAML = `
basics:
  date: "2024-01-10"
  gaf: "55"
vitals:
  spo2: "98"
medication:
  adherence:
    selected: 服用忘れあり
    other: 朝のみ
consultation:
  last_visit:
    psychiatry:
      hospital: こころクリニック
      prescription: あり
  next_visit:
    internal_medicine:
      date: "2024-02-01"
      change: "yes"
      change_detail: 増量
    other:
      change: "no"
      change_detail: 古いメモ
info:
  mental: 安定
  living:
    meals: 3食摂取
`

func sampleState() form.State {
	return form.Apply(form.New(), form.Batch{
		form.SetField{Field: form.FieldDate, Value: "2024-01-10"},
		form.SetField{Field: form.FieldSpO2, Value: "98"},
		form.SelectOption{Checklist: form.ChecklistDispensing, Option: "不足分のみ"},
		form.SetOtherText{Checklist: form.ChecklistAdherence, Text: "夕のみ"},
		form.SetHospitalName{Visit: form.VisitLast, Department: form.DepartmentOther, Name: "B眼科"},
		form.SetCheck{Visit: form.VisitLast, Department: form.DepartmentOther, Line: form.CheckPrescription, Check: form.CheckNo},
		form.SetCheck{Visit: form.VisitNext, Department: form.DepartmentPsychiatry, Line: form.CheckChange, Check: form.CheckYes},
		form.SetConsultationValue{Visit: form.VisitNext, Department: form.DepartmentPsychiatry, Line: form.ValueChange, Value: "減量"},
		form.SetMemo{Visit: form.VisitNext, Department: form.DepartmentInternal, Memo: "採血"},
		form.SetInfo{Info: form.InfoDaytime, Value: "散歩"},
		form.SetLiving{Entry: form.LivingHygiene, Value: "入浴済"},
		form.SetDetailExpanded{Expanded: true},
	})
}

func TestDecode_YAML(t *testing.T) {
	s, err := Decode([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-10", s.Field(form.FieldDate).Value)
	assert.Equal(t, "55", s.Field(form.FieldGAF).Value)
	assert.Equal(t, "服用忘れあり", s.Checklist(form.ChecklistAdherence).Selected)
	assert.Equal(t, "朝のみ", s.Checklist(form.ChecklistAdherence).OtherText)
	assert.Equal(t, form.CheckYes, s.Entry(form.VisitLast, form.DepartmentPsychiatry).Field(form.LinePrescription).Check)

	change := s.Entry(form.VisitNext, form.DepartmentInternal).Field(form.LineChange)
	assert.Equal(t, form.CheckYes, change.Check)
	assert.Equal(t, "増量", change.Value)

	// A なし answer drops the text written next to it.
	other := s.Entry(form.VisitNext, form.DepartmentOther).Field(form.LineChange)
	assert.Equal(t, form.CheckNo, other.Check)
	assert.Empty(t, other.Value)

	assert.Equal(t, "3食摂取", s.Living(form.LivingMeals).Value)
	assert.False(t, s.DetailExpanded())
}

func TestDecode_YAMLReport(t *testing.T) {
	s, err := Decode([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)

	want := "日付: 2024-01-10\nGAF: 55\n\nSp02: 98%\n\n" +
		"内服薬服用状況: 服用忘れあり\nその他: 朝のみ\n\n" +
		"【最終受診日】\n精神科\n  病院名: こころクリニック\n  処方:  あり\n\n" +
		"【次回受診日】\n内科\n  日付: 2024-02-01\n  変更: 増量 あり\n\n" +
		"精神状態: 安定\n生活状況:\n  - 食事: 3食摂取"
	assert.Equal(t, want, report.Build(s))
}

func TestDecode_Empty(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		s, err := Decode(nil, format)
		require.NoError(t, err, "format %s", format)
		assert.Equal(t, form.New(), s, "format %s", format)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(sampleState(), format)
			require.NoError(t, err)

			got, err := Decode(data, format)
			require.NoError(t, err)
			assert.Equal(t, sampleState(), got)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{"unknown option", FormatYAML, "medication:\n  adherence:\n    selected: 毎日\n"},
		{"option of other item", FormatYAML, "medication:\n  dispensing:\n    selected: 全て服用済\n"},
		{"invalid check", FormatYAML, "consultation:\n  last_visit:\n    other:\n      change: maybe\n"},
		{"unknown yaml key", FormatYAML, "basics:\n  weight: \"60\"\n"},
		{"malformed yaml", FormatYAML, "basics: [\n"},
		{"unknown toml key", FormatTOML, "[vitals]\nweight = \"60\"\n"},
		{"invalid toml check", FormatTOML, "[consultation.next_visit.psychiatry]\nprescription = \"perhaps\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidVisit)
		})
	}
}

func TestDecode_TOML(t *testing.T) {
	data := `
[basics]
date = "2024-03-03"

[consultation.last_visit.internal_medicine]
hospital = "市民病院"
prescription = "なし"

[info.living]
environment = "整頓"
`
	s, err := Decode([]byte(data), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-03", s.Field(form.FieldDate).Value)
	entry := s.Entry(form.VisitLast, form.DepartmentInternal)
	assert.Equal(t, "市民病院", entry.HospitalName)
	assert.Equal(t, form.CheckNo, entry.Field(form.LinePrescription).Check)
	assert.Equal(t, "整頓", s.Living(form.LivingEnvironment).Value)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"visit.yaml", FormatYAML, false},
		{"visit.YML", FormatYAML, false},
		{"dir/visit.toml", FormatTOML, false},
		{"visit.json", "", true},
		{"visit", "", true},
	}
	for _, tc := range tests {
		got, err := FormatFromPath(tc.path)
		if tc.wantErr {
			assert.Error(t, err, tc.path)
			continue
		}
		require.NoError(t, err, tc.path)
		assert.Equal(t, tc.want, got, tc.path)
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"visit.yaml", "nested/visit.toml"} {
		path := filepath.Join(dir, name)
		n, err := Save(path, sampleState())
		require.NoError(t, err)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, int64(n), info.Size())

		got, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, sampleState(), got)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "visit.txt"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("info:\n  mood: ok\n"), 0644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrInvalidVisit)
}

func TestFromState(t *testing.T) {
	d := FromState(sampleState())

	assert.Equal(t, "2024-01-10", d.Basics.Date)
	assert.Equal(t, "不足分のみ", d.Medication.Dispensing.Selected)
	assert.Equal(t, "夕のみ", d.Medication.Adherence.Other)
	assert.Equal(t, "B眼科", d.Consultation.LastVisit.Other.Hospital)
	assert.Equal(t, form.CheckNo, d.Consultation.LastVisit.Other.Prescription)
	assert.Equal(t, form.CheckYes, d.Consultation.NextVisit.Psychiatry.Change)
	assert.Equal(t, "減量", d.Consultation.NextVisit.Psychiatry.ChangeDetail)
	assert.Equal(t, "採血", d.Consultation.NextVisit.InternalMedicine.Memo)
	assert.Equal(t, "入浴済", d.Info.Living.Hygiene)
	assert.True(t, d.Info.ShowDetails)
}

// Package visitfile imports and exports a whole visit form as a YAML or
// TOML document. Imports are replayed through form.Apply, so file data is
// subject to the same rules as interactive edits.
package visitfile

import (
	"errors"
	"fmt"

	"github.com/mrsinham/visitnote/internal/form"
)

// ErrInvalidVisit is returned for documents that do not fit the form schema.
var ErrInvalidVisit = errors.New("invalid visit document")

// Document is the file representation of a visit form.
type Document struct {
	Basics       Basics       `yaml:"basics" toml:"basics"`
	Vitals       Vitals       `yaml:"vitals" toml:"vitals"`
	Medication   Medication   `yaml:"medication" toml:"medication"`
	Consultation Consultation `yaml:"consultation" toml:"consultation"`
	Info         Info         `yaml:"info" toml:"info"`
}

// Basics holds the untitled top section.
type Basics struct {
	Date string `yaml:"date" toml:"date"`
	GAF  string `yaml:"gaf" toml:"gaf"`
}

// Vitals holds the バイタル値 section.
type Vitals struct {
	Temperature   string `yaml:"temperature" toml:"temperature"`
	BloodPressure string `yaml:"blood_pressure" toml:"blood_pressure"`
	Pulse         string `yaml:"pulse" toml:"pulse"`
	SpO2          string `yaml:"spo2" toml:"spo2"`
}

// Medication holds the 内服薬 checklist items.
type Medication struct {
	Adherence  Checklist `yaml:"adherence" toml:"adherence"`
	Dispensing Checklist `yaml:"dispensing" toml:"dispensing"`
}

// Checklist is one medication item. Selected must be one of the item's
// options or empty.
type Checklist struct {
	Selected string `yaml:"selected" toml:"selected"`
	Other    string `yaml:"other" toml:"other"`
}

// Consultation holds the 受診状況 items.
type Consultation struct {
	LastVisit Visit `yaml:"last_visit" toml:"last_visit"`
	NextVisit Visit `yaml:"next_visit" toml:"next_visit"`
}

// Visit holds the three department entries of one consultation item.
type Visit struct {
	Psychiatry       Entry `yaml:"psychiatry" toml:"psychiatry"`
	InternalMedicine Entry `yaml:"internal_medicine" toml:"internal_medicine"`
	Other            Entry `yaml:"other" toml:"other"`
}

// Entry is one hospital entry.
type Entry struct {
	Hospital     string     `yaml:"hospital" toml:"hospital"`
	Date         string     `yaml:"date" toml:"date"`
	Prescription form.Check `yaml:"prescription" toml:"prescription"`
	Change       form.Check `yaml:"change" toml:"change"`
	ChangeDetail string     `yaml:"change_detail" toml:"change_detail"`
	Memo         string     `yaml:"memo" toml:"memo"`
}

// Info holds the 情報 items.
type Info struct {
	Mental      string `yaml:"mental" toml:"mental"`
	Physical    string `yaml:"physical" toml:"physical"`
	Living      Living `yaml:"living" toml:"living"`
	Daytime     string `yaml:"daytime" toml:"daytime"`
	ShowDetails bool   `yaml:"show_details" toml:"show_details"`
}

// Living holds the 生活状況 sub-entries.
type Living struct {
	Hygiene     string `yaml:"hygiene" toml:"hygiene"`
	Meals       string `yaml:"meals" toml:"meals"`
	Environment string `yaml:"environment" toml:"environment"`
}

func (m *Medication) item(id form.ChecklistID) *Checklist {
	if id == form.ChecklistDispensing {
		return &m.Dispensing
	}
	return &m.Adherence
}

func (c *Consultation) visit(id form.VisitID) *Visit {
	if id == form.VisitNext {
		return &c.NextVisit
	}
	return &c.LastVisit
}

func (v *Visit) entry(id form.DepartmentID) *Entry {
	switch id {
	case form.DepartmentInternal:
		return &v.InternalMedicine
	case form.DepartmentOther:
		return &v.Other
	default:
		return &v.Psychiatry
	}
}

func (d *Document) field(id form.FieldID) *string {
	switch id {
	case form.FieldDate:
		return &d.Basics.Date
	case form.FieldGAF:
		return &d.Basics.GAF
	case form.FieldTemperature:
		return &d.Vitals.Temperature
	case form.FieldBloodPressure:
		return &d.Vitals.BloodPressure
	case form.FieldPulse:
		return &d.Vitals.Pulse
	default:
		return &d.Vitals.SpO2
	}
}

func (i *Info) text(id form.InfoID) *string {
	switch id {
	case form.InfoPhysical:
		return &i.Physical
	case form.InfoDaytime:
		return &i.Daytime
	default:
		return &i.Mental
	}
}

func (l *Living) entry(id form.LivingID) *string {
	switch id {
	case form.LivingMeals:
		return &l.Meals
	case form.LivingEnvironment:
		return &l.Environment
	default:
		return &l.Hygiene
	}
}

// FromState converts a form into its document.
func FromState(s form.State) Document {
	var d Document
	for _, id := range form.AllFields() {
		*d.field(id) = s.Field(id).Value
	}
	for _, id := range form.AllChecklists() {
		item := s.Checklist(id)
		*d.Medication.item(id) = Checklist{Selected: item.Selected, Other: item.OtherText}
	}
	for _, v := range form.AllVisits() {
		for _, dep := range form.AllDepartments() {
			e := s.Entry(v, dep)
			*d.Consultation.visit(v).entry(dep) = Entry{
				Hospital:     e.HospitalName,
				Date:         e.Field(form.LineDate).Value,
				Prescription: e.Field(form.LinePrescription).Check,
				Change:       e.Field(form.LineChange).Check,
				ChangeDetail: e.Field(form.LineChange).Value,
				Memo:         e.Memo,
			}
		}
	}
	for _, id := range form.AllInfo() {
		*d.Info.text(id) = s.Info(id).Value
	}
	for _, id := range form.AllLiving() {
		*d.Info.Living.entry(id) = s.Living(id).Value
	}
	d.Info.ShowDetails = s.DetailExpanded()
	return d
}

// Edits returns the edits that turn an empty form into the document's form.
// The 変更 text is applied before its check, so a なし answer in the file
// drops any text next to it.
func (d Document) Edits() (form.Batch, error) {
	var edits form.Batch
	for _, id := range form.AllFields() {
		edits = append(edits, form.SetField{Field: id, Value: *d.field(id)})
	}
	for _, id := range form.AllChecklists() {
		item := *d.Medication.item(id)
		if item.Selected != "" {
			if !form.HasOption(id, item.Selected) {
				return nil, fmt.Errorf("%w: %s: unknown option %q (valid: %v)",
					ErrInvalidVisit, id.Title(), item.Selected, form.Options(id))
			}
			edits = append(edits, form.SelectOption{Checklist: id, Option: item.Selected})
		}
		edits = append(edits, form.SetOtherText{Checklist: id, Text: item.Other})
	}
	for _, v := range form.AllVisits() {
		for _, dep := range form.AllDepartments() {
			e := *d.Consultation.visit(v).entry(dep)
			edits = append(edits,
				form.SetHospitalName{Visit: v, Department: dep, Name: e.Hospital},
				form.SetConsultationValue{Visit: v, Department: dep, Line: form.ValueDate, Value: e.Date},
				form.SetCheck{Visit: v, Department: dep, Line: form.CheckPrescription, Check: e.Prescription},
				form.SetConsultationValue{Visit: v, Department: dep, Line: form.ValueChange, Value: e.ChangeDetail},
				form.SetCheck{Visit: v, Department: dep, Line: form.CheckChange, Check: e.Change},
				form.SetMemo{Visit: v, Department: dep, Memo: e.Memo},
			)
		}
	}
	for _, id := range form.AllInfo() {
		edits = append(edits, form.SetInfo{Info: id, Value: *d.Info.text(id)})
	}
	for _, id := range form.AllLiving() {
		edits = append(edits, form.SetLiving{Entry: id, Value: *d.Info.Living.entry(id)})
	}
	edits = append(edits, form.SetDetailExpanded{Expanded: d.Info.ShowDetails})
	return edits, nil
}

// State returns the form described by the document.
func (d Document) State() (form.State, error) {
	edits, err := d.Edits()
	if err != nil {
		return form.State{}, err
	}
	return form.Apply(form.New(), edits), nil
}

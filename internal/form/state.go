// Package form holds the visit form data model and the edits that change it.
//
// State is a value. Every record sits in a fixed array addressed by a typed
// identifier, so copying a State copies the whole form and an edit can only
// ever replace the record it addresses.
package form

// KeyValueField is a titled free-text value. The title never changes.
type KeyValueField struct {
	Title string
	Value string
}

// ChecklistItem is a single-choice medication item with a free-text note.
type ChecklistItem struct {
	Title      string
	Options    []string
	OtherLabel string
	OtherText  string
	Selected   string
}

// ConsultationField is one line of a hospital entry.
// Check is always CheckUnset on the 日付 line.
type ConsultationField struct {
	Label string
	Value string
	Check Check
}

// HospitalEntry is one department record of a consultation item.
type HospitalEntry struct {
	Name         string
	HospitalName string
	Fields       [lineCount]ConsultationField
	Memo         string
}

// Field returns the line of the entry.
func (e HospitalEntry) Field(id LineID) ConsultationField {
	return e.Fields[id]
}

// ConsultationItem groups the three fixed hospital entries of a visit.
type ConsultationItem struct {
	Title   string
	Entries [departmentCount]HospitalEntry
}

// checklistRecord is the stored form of a ChecklistItem. The options live in
// the schema, which keeps State free of slices.
type checklistRecord struct {
	title      string
	otherLabel string
	otherText  string
	selected   string
}

// Section is a read view of one top section.
type Section struct {
	Title  string
	Fields []KeyValueField
}

// InfoItem is a read view of one info block position.
// The 生活状況 item has a Sublist and no Value.
type InfoItem struct {
	Title   string
	Value   string
	Sublist []KeyValueField
}

// Composite reports whether the item is the 生活状況 item.
func (i InfoItem) Composite() bool {
	return i.Sublist != nil
}

// State is the whole visit form. States compare with ==.
type State struct {
	fields         [fieldCount]KeyValueField
	checklists     [checklistCount]checklistRecord
	visits         [visitCount]ConsultationItem
	info           [infoCount]KeyValueField
	living         [livingCount]KeyValueField
	detailExpanded bool
}

// New returns an empty form with the fixed schema.
func New() State {
	var s State
	for _, id := range AllFields() {
		s.fields[id] = KeyValueField{Title: id.Title()}
	}
	for _, id := range AllChecklists() {
		s.checklists[id] = checklistRecord{
			title:      id.Title(),
			otherLabel: otherLabel,
		}
	}
	for _, v := range AllVisits() {
		item := ConsultationItem{Title: v.Title()}
		for _, d := range AllDepartments() {
			entry := HospitalEntry{Name: d.Name()}
			for _, l := range AllLines() {
				entry.Fields[l] = ConsultationField{Label: l.Label()}
			}
			item.Entries[d] = entry
		}
		s.visits[v] = item
	}
	for _, id := range AllInfo() {
		s.info[id] = KeyValueField{Title: id.Title()}
	}
	for _, id := range AllLiving() {
		s.living[id] = KeyValueField{Title: id.Title()}
	}
	return s
}

// Field returns a top field.
func (s State) Field(id FieldID) KeyValueField {
	return s.fields[id]
}

// Section returns a top section with its fields in order.
func (s State) Section(id SectionID) Section {
	sec := Section{Title: id.Title()}
	for _, f := range SectionFields(id) {
		sec.Fields = append(sec.Fields, s.fields[f])
	}
	return sec
}

// Checklist returns a medication item. Options is a copy.
func (s State) Checklist(id ChecklistID) ChecklistItem {
	r := s.checklists[id]
	return ChecklistItem{
		Title:      r.title,
		Options:    Options(id),
		OtherLabel: r.otherLabel,
		OtherText:  r.otherText,
		Selected:   r.selected,
	}
}

// Consultation returns a consultation item.
func (s State) Consultation(id VisitID) ConsultationItem {
	return s.visits[id]
}

// Entry returns one hospital entry.
func (s State) Entry(v VisitID, d DepartmentID) HospitalEntry {
	return s.visits[v].Entries[d]
}

// Info returns a free-text info item.
func (s State) Info(id InfoID) KeyValueField {
	return s.info[id]
}

// Living returns a 生活状況 sub-entry.
func (s State) Living(id LivingID) KeyValueField {
	return s.living[id]
}

// DetailExpanded reports whether the 生活状況 sub-entries are shown for editing.
func (s State) DetailExpanded() bool {
	return s.detailExpanded
}

// InfoItems returns the info block in its fixed order.
func (s State) InfoItems() []InfoItem {
	items := make([]InfoItem, 0, len(infoOrder))
	for _, slot := range infoOrder {
		if slot.living {
			sub := make([]KeyValueField, 0, livingCount)
			for _, id := range AllLiving() {
				sub = append(sub, s.living[id])
			}
			items = append(items, InfoItem{Title: LivingTitle, Sublist: sub})
			continue
		}
		f := s.info[slot.text]
		items = append(items, InfoItem{Title: f.Title, Value: f.Value})
	}
	return items
}

package form

// Edit is a single field change. The set of edits is closed: only the types
// in this file implement it, so an edit can never address a field that does
// not exist in the schema.
type Edit interface {
	apply(s *State)
}

// Apply returns a copy of s with e applied. Only the record addressed by e
// differs from s; s itself is never modified.
func Apply(s State, e Edit) State {
	if e == nil {
		return s
	}
	e.apply(&s)
	return s
}

// SetField replaces the value of a top field.
type SetField struct {
	Field FieldID
	Value string
}

func (e SetField) apply(s *State) {
	s.fields[e.Field].Value = e.Value
}

// SelectOption selects a medication option. Selecting the current option
// again keeps it selected.
type SelectOption struct {
	Checklist ChecklistID
	Option    string
}

func (e SelectOption) apply(s *State) {
	s.checklists[e.Checklist].selected = e.Option
}

// SetOtherText replaces the free-text note of a medication item.
type SetOtherText struct {
	Checklist ChecklistID
	Text      string
}

func (e SetOtherText) apply(s *State) {
	s.checklists[e.Checklist].otherText = e.Text
}

// SetHospitalName replaces the hospital name of an entry.
type SetHospitalName struct {
	Visit      VisitID
	Department DepartmentID
	Name       string
}

func (e SetHospitalName) apply(s *State) {
	s.visits[e.Visit].Entries[e.Department].HospitalName = e.Name
}

// SetMemo replaces the memo of an entry.
type SetMemo struct {
	Visit      VisitID
	Department DepartmentID
	Memo       string
}

func (e SetMemo) apply(s *State) {
	s.visits[e.Visit].Entries[e.Department].Memo = e.Memo
}

// SetConsultationValue replaces the text of the 日付 or 変更 line.
// Hosts only offer the 変更 input while its check is CheckYes.
type SetConsultationValue struct {
	Visit      VisitID
	Department DepartmentID
	Line       ValueLine
	Value      string
}

func (e SetConsultationValue) apply(s *State) {
	s.visits[e.Visit].Entries[e.Department].Fields[e.Line.Line()].Value = e.Value
}

// SetCheck records the あり/なし answer of the 処方 or 変更 line.
// Setting CheckNo empties the line value in the same edit.
type SetCheck struct {
	Visit      VisitID
	Department DepartmentID
	Line       CheckLine
	Check      Check
}

func (e SetCheck) apply(s *State) {
	f := &s.visits[e.Visit].Entries[e.Department].Fields[e.Line.Line()]
	*f = f.transition(e.Check)
}

// SetInfo replaces the value of a free-text info item.
type SetInfo struct {
	Info  InfoID
	Value string
}

func (e SetInfo) apply(s *State) {
	s.info[e.Info].Value = e.Value
}

// SetLiving replaces the value of a 生活状況 sub-entry.
type SetLiving struct {
	Entry LivingID
	Value string
}

func (e SetLiving) apply(s *State) {
	s.living[e.Entry].Value = e.Value
}

// SetDetailExpanded shows or hides the 生活状況 sub-entries.
// It has no effect on the report.
type SetDetailExpanded struct {
	Expanded bool
}

func (e SetDetailExpanded) apply(s *State) {
	s.detailExpanded = e.Expanded
}

// Batch applies its edits in order.
type Batch []Edit

func (b Batch) apply(s *State) {
	for _, e := range b {
		if e != nil {
			e.apply(s)
		}
	}
}

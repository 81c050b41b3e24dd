package form

// The visit form schema is static: every section, item and field below is
// created once by New and never added or removed afterwards.

// SectionID identifies one of the two fixed top sections.
type SectionID int

const (
	SectionBasics SectionID = iota
	SectionVitals
	sectionCount
)

// Title returns the section heading. Basics has no heading.
func (id SectionID) Title() string {
	return sectionTitles[id]
}

var sectionTitles = [sectionCount]string{"", "バイタル値"}

// AllSections returns the top sections in report order.
func AllSections() []SectionID {
	return []SectionID{SectionBasics, SectionVitals}
}

// FieldID identifies a key/value field of the top sections.
type FieldID int

const (
	FieldDate FieldID = iota
	FieldGAF
	FieldTemperature
	FieldBloodPressure
	FieldPulse
	FieldSpO2
	fieldCount
)

var fieldTitles = [fieldCount]string{"日付", "GAF", "体温", "血圧", "脈", "Sp02"}

var fieldSections = [fieldCount]SectionID{
	SectionBasics, SectionBasics,
	SectionVitals, SectionVitals, SectionVitals, SectionVitals,
}

// Title returns the field label.
func (id FieldID) Title() string {
	return fieldTitles[id]
}

// Section returns the section the field belongs to.
func (id FieldID) Section() SectionID {
	return fieldSections[id]
}

// AllFields returns every top field in report order.
func AllFields() []FieldID {
	return []FieldID{FieldDate, FieldGAF, FieldTemperature, FieldBloodPressure, FieldPulse, FieldSpO2}
}

// SectionFields returns the fields of a section in report order.
func SectionFields(section SectionID) []FieldID {
	var ids []FieldID
	for _, id := range AllFields() {
		if id.Section() == section {
			ids = append(ids, id)
		}
	}
	return ids
}

// ChecklistID identifies a medication checklist item.
type ChecklistID int

const (
	ChecklistAdherence ChecklistID = iota
	ChecklistDispensing
	checklistCount
)

const otherLabel = "その他"

var checklistTitles = [checklistCount]string{"内服薬服用状況", "服薬セット"}

var checklistOptions = [checklistCount][]string{
	{"全て服用済", "概ね服用済み(60%)", "服用忘れあり"},
	{"1週間分", "次回訪問日まで", "不足分のみ"},
}

// Title returns the checklist heading.
func (id ChecklistID) Title() string {
	return checklistTitles[id]
}

// AllChecklists returns the medication items in report order.
func AllChecklists() []ChecklistID {
	return []ChecklistID{ChecklistAdherence, ChecklistDispensing}
}

// Options returns a copy of the choices offered by a checklist item.
func Options(id ChecklistID) []string {
	return append([]string(nil), checklistOptions[id]...)
}

// HasOption reports whether option is one of the item's choices.
func HasOption(id ChecklistID, option string) bool {
	for _, o := range checklistOptions[id] {
		if o == option {
			return true
		}
	}
	return false
}

// VisitID identifies a top-level consultation item.
type VisitID int

const (
	VisitLast VisitID = iota
	VisitNext
	visitCount
)

var visitTitles = [visitCount]string{"最終受診日", "次回受診日"}

// Title returns the consultation item heading.
func (id VisitID) Title() string {
	return visitTitles[id]
}

// AllVisits returns the consultation items in report order.
func AllVisits() []VisitID {
	return []VisitID{VisitLast, VisitNext}
}

// DepartmentID identifies a hospital entry inside a consultation item.
type DepartmentID int

const (
	DepartmentPsychiatry DepartmentID = iota
	DepartmentInternal
	DepartmentOther
	departmentCount
)

var departmentNames = [departmentCount]string{"精神科", "内科", "その他"}

// Name returns the department name.
func (id DepartmentID) Name() string {
	return departmentNames[id]
}

// AllDepartments returns the hospital entries in their fixed order.
func AllDepartments() []DepartmentID {
	return []DepartmentID{DepartmentPsychiatry, DepartmentInternal, DepartmentOther}
}

// LineID identifies a line of a hospital entry.
type LineID int

const (
	LineDate LineID = iota
	LinePrescription
	LineChange
	lineCount
)

var lineLabels = [lineCount]string{"日付", "処方", "変更"}

// Label returns the line label.
func (id LineID) Label() string {
	return lineLabels[id]
}

// AllLines returns the lines of a hospital entry in report order.
func AllLines() []LineID {
	return []LineID{LineDate, LinePrescription, LineChange}
}

// CheckLine is a line that carries a Check. 日付 never does.
type CheckLine int

const (
	CheckPrescription CheckLine = iota
	CheckChange
)

// Line returns the line addressed by c.
func (c CheckLine) Line() LineID {
	if c == CheckChange {
		return LineChange
	}
	return LinePrescription
}

// ValueLine is a line with a free-text value. 処方 only has its check.
type ValueLine int

const (
	ValueDate ValueLine = iota
	ValueChange
)

// Line returns the line addressed by v.
func (v ValueLine) Line() LineID {
	if v == ValueChange {
		return LineChange
	}
	return LineDate
}

// InfoID identifies a free-text info item.
type InfoID int

const (
	InfoMental InfoID = iota
	InfoPhysical
	InfoDaytime
	infoCount
)

var infoTitles = [infoCount]string{"精神状態", "身体状態", "日中活動"}

// Title returns the info item heading.
func (id InfoID) Title() string {
	return infoTitles[id]
}

// AllInfo returns the free-text info items.
func AllInfo() []InfoID {
	return []InfoID{InfoMental, InfoPhysical, InfoDaytime}
}

// LivingTitle is the heading of the composite info item.
const LivingTitle = "生活状況"

// LivingID identifies a sub-entry of the 生活状況 item.
type LivingID int

const (
	LivingHygiene LivingID = iota
	LivingMeals
	LivingEnvironment
	livingCount
)

var livingTitles = [livingCount]string{"保清", "食事", "環境"}

// Title returns the sub-entry label.
func (id LivingID) Title() string {
	return livingTitles[id]
}

// AllLiving returns the 生活状況 sub-entries in order.
func AllLiving() []LivingID {
	return []LivingID{LivingHygiene, LivingMeals, LivingEnvironment}
}

// infoSlot is one position of the info block: a text item or the composite.
type infoSlot struct {
	text   InfoID
	living bool
}

var infoOrder = []infoSlot{
	{text: InfoMental},
	{text: InfoPhysical},
	{living: true},
	{text: InfoDaytime},
}

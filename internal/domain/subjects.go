package domain

// SubjectID identifies one of the predefined subjects.
type SubjectID string

const (
	SubjectMaths     SubjectID = "maths-ocr"
	SubjectCompSci   SubjectID = "cs-ocr"
	SubjectEconomics SubjectID = "econ-edx"
)

// Subject pairs a subject id with its display name.
// The subject set is fixed; subjects are not user-editable.
type Subject struct {
	ID   SubjectID
	Name string
}

// Subjects is the full subject enumeration, in display order.
var Subjects = []Subject{
	{ID: SubjectMaths, Name: "A Level Maths (OCR)"},
	{ID: SubjectCompSci, Name: "A Level Computer Science (OCR)"},
	{ID: SubjectEconomics, Name: "A Level Economics (Edexcel)"},
}

// SubjectByID looks up a subject by id.
func SubjectByID(id SubjectID) (Subject, bool) {
	for _, s := range Subjects {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}

package aptitude

// Section is the closed set of topical categories a question belongs to.
type Section string

const (
	SectionVerbal           Section = "verbal"
	SectionQuantitative     Section = "quantitative"
	SectionGeneralKnowledge Section = "generalKnowledge"
)

// Sections lists every section in a fixed order.
func Sections() [3]Section {
	return [3]Section{SectionVerbal, SectionQuantitative, SectionGeneralKnowledge}
}

func (s Section) Valid() bool {
	switch s {
	case SectionVerbal, SectionQuantitative, SectionGeneralKnowledge:
		return true
	}
	return false
}

type Question struct {
	Text    string   `json:"question"`
	Options []string `json:"options"` // index-addressed, A/B/C/... by position
	Correct int      `json:"correctAnswer"`
	Section Section  `json:"section"`
}

// SanitizedQuestion is a question view with the answer key removed.
// Derived one-way from Question; safe to hand to a test-taker.
type SanitizedQuestion struct {
	Text    string   `json:"question"`
	Options []string `json:"options"`
	Section Section  `json:"section"`
}

type Test struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DurationMin int        `json:"duration"` // minutes
	Questions   []Question `json:"questions"`
}

// SanitizedTest is the student-facing shape of a Test.
type SanitizedTest struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	DurationMin int                 `json:"duration"`
	Questions   []SanitizedQuestion `json:"questions"`
}

// AnswerSet maps question index to the chosen option index. Unanswered
// questions are simply absent; selecting again overwrites the prior choice.
type AnswerSet map[int]int

type SectionScore struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

// SectionScores holds one slot per fixed section so a new section is a
// compile error everywhere it matters, not a missing map key.
type SectionScores struct {
	Verbal           SectionScore `json:"verbal"`
	Quantitative     SectionScore `json:"quantitative"`
	GeneralKnowledge SectionScore `json:"generalKnowledge"`
}

// At returns the slot for a section.
func (s *SectionScores) At(sec Section) *SectionScore {
	switch sec {
	case SectionVerbal:
		return &s.Verbal
	case SectionQuantitative:
		return &s.Quantitative
	case SectionGeneralKnowledge:
		return &s.GeneralKnowledge
	}
	return nil
}

// Result is one graded submission. ID and CompletedAt are assigned by the
// result store at write time; everything else is a pure function of
// (test, answers).
type Result struct {
	ID             string        `json:"id,omitempty"`
	StudentID      string        `json:"studentId"`
	TestID         string        `json:"testId"`
	Score          int           `json:"score"`
	TotalQuestions int           `json:"totalQuestions"`
	Percentage     float64       `json:"percentage"` // two-decimal precision
	SectionScores  SectionScores `json:"sectionScores"`
	Answers        AnswerSet     `json:"answers"`
	CompletedAt    string        `json:"completedAt,omitempty"` // ISO-8601, set by the store
}

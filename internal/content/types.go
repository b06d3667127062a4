package content

// Question is a single practice question. The same shape is used for
// guided practice, independent practice, mastery checks, and chapter
// review; unused fields stay empty.
type Question struct {
	Text        string
	Answer      string   // canonical expected answer
	Acceptable  []string // variants that also count as correct
	Hint        string
	Difficulty  int
	ImagePrompt string // optional illustration description
}

// Example is a worked problem used when explaining a concept.
type Example struct {
	Problem     string
	Solution    string
	Explanation string
}

// Concept is one teachable unit within a chapter. A concept walks
// through introduction, explanation, a visual example, guided practice,
// independent practice, and a mastery check.
type Concept struct {
	ID                string
	Name              string
	Objective         string
	IntroScript       string
	ExplanationScript string
	KeyPoints         []string
	VisualDescription string // what the illustration should show
	VisualScript      string // how to talk through the illustration
	Examples          []Example
	Guided            []Question
	Independent       []Question
	Mastery           Question

	Encouragements []string // praise phrasing material
	StruggleHints  []string // extra-help phrasing material
}

// Chapter is a complete lesson: ordered concepts plus review questions
// and the welcome/completion scripts that bookend them.
type Chapter struct {
	ID          string
	Title       string
	Description string
	Grade       int
	Subject     string

	WelcomeScript    string
	Overview         string
	Concepts         []Concept
	ReviewQuestions  []Question
	CompletionScript string
}

// TotalConcepts returns the number of concepts in the chapter.
func (c *Chapter) TotalConcepts() int {
	return len(c.Concepts)
}

// Concept returns the concept at index i, or nil when i is out of range.
func (c *Chapter) Concept(i int) *Concept {
	if i < 0 || i >= len(c.Concepts) {
		return nil
	}
	return &c.Concepts[i]
}

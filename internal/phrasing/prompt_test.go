package phrasing

import (
	"strings"
	"testing"

	"github.com/abhisek/learno/internal/content"
)

func testConcept() *content.Concept {
	return &content.Concept{
		ID:                "numbers_1_to_5",
		Name:              "Numbers 1 to 5",
		Objective:         "Count objects from 1 to 5",
		IntroScript:       "Today we learn to count to five!",
		ExplanationScript: "We point at each apple and say a number.",
		KeyPoints:         []string{"Point at each object", "Say one number per object"},
		VisualDescription: "5 red apples in a row, cartoon style",
		VisualScript:      "Count the apples one by one.",
		Examples: []content.Example{
			{Problem: "Count 3 apples", Solution: "3", Explanation: "Point and count: 1, 2, 3"},
			{Problem: "Count 5 stars", Solution: "5", Explanation: "Point and count up to 5"},
			{Problem: "Count 2 cats", Solution: "2", Explanation: "Never reaches the prompt"},
		},
	}
}

func TestWelcomePrompt(t *testing.T) {
	ch := &content.Chapter{
		Title:         "Counting Adventure",
		WelcomeScript: "Welcome aboard, little explorer!",
		Overview:      "We will count, compare, and add numbers.",
	}
	msg := WelcomePrompt(ch)

	for _, want := range []string{
		`"Counting Adventure"`,
		"Welcome aboard, little explorer!",
		"We will count, compare, and add numbers.",
		"Ready? Let's go!",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("welcome prompt missing %q", want)
		}
	}
}

func TestIntroductionPrompt(t *testing.T) {
	msg := IntroductionPrompt(testConcept())

	if !strings.Contains(msg, `"Numbers 1 to 5"`) {
		t.Error("missing concept name")
	}
	if !strings.Contains(msg, "Count objects from 1 to 5") {
		t.Error("missing learning goal")
	}
	if !strings.Contains(msg, "Today we learn to count to five!") {
		t.Error("missing introduction script")
	}
}

func TestExplanationPrompt_LimitsExamples(t *testing.T) {
	msg := ExplanationPrompt(testConcept())

	if !strings.Contains(msg, "- Point at each object") {
		t.Error("missing key point")
	}
	if !strings.Contains(msg, "Count 3 apples") || !strings.Contains(msg, "Count 5 stars") {
		t.Error("missing first two examples")
	}
	// Only the first two examples feed the prompt.
	if strings.Contains(msg, "Count 2 cats") {
		t.Error("third example should be dropped")
	}
}

func TestVisualPrompt_EmbedsMarker(t *testing.T) {
	msg := VisualPrompt(testConcept())

	if !strings.Contains(msg, "[GENERATE_IMAGE: 5 red apples in a row, cartoon style]") {
		t.Error("missing image marker with visual description")
	}
	if !strings.Contains(msg, "Count the apples one by one.") {
		t.Error("missing visual script")
	}
}

func TestGuidedPrompt_Transitions(t *testing.T) {
	q := &content.Question{Text: "How many apples?", Answer: "3", Hint: "Count slowly"}

	first := GuidedPrompt("Numbers 1 to 5", q, true)
	if !strings.Contains(first, "Let's practice together!") {
		t.Error("first guided question should open practice")
	}

	later := GuidedPrompt("Numbers 1 to 5", q, false)
	if !strings.Contains(later, "Let's try another one!") {
		t.Error("later guided questions should continue practice")
	}
	if !strings.Contains(later, `"How many apples?"`) {
		t.Error("missing question text")
	}
	if !strings.Contains(later, `"Count slowly"`) {
		t.Error("missing hint")
	}
}

func TestGuidedPrompt_ImageInstruction(t *testing.T) {
	withImage := &content.Question{Text: "Count", Answer: "2", ImagePrompt: "2 bananas, cartoon style"}
	msg := GuidedPrompt("Counting", withImage, true)
	if !strings.Contains(msg, "[GENERATE_IMAGE: 2 bananas, cartoon style]") {
		t.Error("missing image instruction for question with image prompt")
	}

	noImage := &content.Question{Text: "Count", Answer: "2"}
	msg = GuidedPrompt("Counting", noImage, true)
	if strings.Contains(msg, "GENERATE_IMAGE") {
		t.Error("unexpected image instruction for question without image prompt")
	}
}

func TestIndependentPrompt_NumbersQuestions(t *testing.T) {
	q := &content.Question{Text: "How many stars?", Answer: "4"}
	msg := IndependentPrompt("Numbers 1 to 5", q, 2, 3)

	if !strings.Contains(msg, "QUESTION 2 of 3") {
		t.Error("missing question position")
	}
	if !strings.Contains(msg, "Your turn! Question 2!") {
		t.Error("missing numbered encouragement")
	}
}

func TestMasteryPrompt(t *testing.T) {
	msg := MasteryPrompt("Numbers 1 to 5", "Count from 1 to 5 out loud!")

	if !strings.Contains(msg, "MASTERY CHECK") {
		t.Error("missing mastery framing")
	}
	if !strings.Contains(msg, "Count from 1 to 5 out loud!") {
		t.Error("missing check question")
	}
}

func TestReviewPrompt(t *testing.T) {
	q := &content.Question{Text: "What is 2 + 2?", Answer: "4"}
	msg := ReviewPrompt(q, 1, 4)

	if !strings.Contains(msg, "REVIEW QUESTION 1 of 4") {
		t.Error("missing review position")
	}
	if !strings.Contains(msg, `"What is 2 + 2?"`) {
		t.Error("missing question text")
	}
}

func TestCelebrationPrompt(t *testing.T) {
	msg := CelebrationPrompt("You finished the counting chapter!", 9, 11)

	if !strings.Contains(msg, "You finished the counting chapter!") {
		t.Error("missing completion script")
	}
	if !strings.Contains(msg, "Correct answers: 9") {
		t.Error("missing correct count")
	}
	if !strings.Contains(msg, "Total questions: 11") {
		t.Error("missing total count")
	}
	if !strings.Contains(msg, "[GENERATE_IMAGE: celebration with confetti, stars, trophy, cartoon style]") {
		t.Error("missing celebration image format")
	}
}

func TestPraisePrompt_LimitsPhrases(t *testing.T) {
	msg := PraisePrompt([]string{"Super!", "Amazing!", "Wow!", "Unused!"})

	for _, want := range []string{`"Super!"`, `"Amazing!"`, `"Wow!"`} {
		if !strings.Contains(msg, want) {
			t.Errorf("praise prompt missing %q", want)
		}
	}
	if strings.Contains(msg, "Unused!") {
		t.Error("fourth phrase should be dropped")
	}
}

func TestHintPrompt_WrongAnswer(t *testing.T) {
	msg := HintPrompt(HintInput{
		Transcript: "four",
		Expected:   "3",
		Hint:       "Count the apples one by one",
		Attempts:   1,
	})

	if !strings.Contains(msg, "The child said 'four' but the answer is '3'.") {
		t.Error("missing situation")
	}
	if !strings.Contains(msg, "ATTEMPT: 2") {
		t.Error("attempt display should be one past the recorded attempts")
	}
	if !strings.Contains(msg, "INTENSITY: gentle") {
		t.Error("first retry should stay gentle")
	}
	if strings.Contains(msg, "EXTRA HELP MODE") {
		t.Error("extra help should be off")
	}
}

func TestHintPrompt_Escalation(t *testing.T) {
	tests := []struct {
		attempts  int
		intensity string
	}{
		{0, "INTENSITY: gentle"},
		{1, "INTENSITY: gentle"},
		{2, "INTENSITY: clearer"},
		{3, "INTENSITY: very helpful"},
		{5, "INTENSITY: very helpful"},
	}
	for _, tt := range tests {
		msg := HintPrompt(HintInput{Transcript: "x", Expected: "y", Hint: "h", Attempts: tt.attempts})
		if !strings.Contains(msg, tt.intensity) {
			t.Errorf("attempts=%d: missing %q", tt.attempts, tt.intensity)
		}
	}
}

func TestHintPrompt_ExtraHelp(t *testing.T) {
	msg := HintPrompt(HintInput{
		Transcript: "seven",
		Expected:   "3",
		Hint:       "Count again",
		Attempts:   3,
		ExtraHelp:  true,
	})

	if !strings.Contains(msg, "EXTRA HELP MODE") {
		t.Error("missing extra help block")
	}
	if !strings.Contains(msg, "Using fingers to count") {
		t.Error("missing extra help suggestions")
	}
}

func TestHintPrompt_Silence(t *testing.T) {
	msg := HintPrompt(HintInput{
		Hint:    "Count the apples",
		Silence: true,
	})

	if !strings.Contains(msg, "The child is quiet and might need encouragement.") {
		t.Error("missing silence situation")
	}
	if !strings.Contains(msg, "gentle encouragement") {
		t.Error("silence should ask for gentle encouragement")
	}
	if strings.Contains(msg, "but the answer is") {
		t.Error("silence prompt should not mention a wrong answer")
	}
}

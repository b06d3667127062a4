package teaching

import "testing"

func TestEvaluateAnswer(t *testing.T) {
	exp := &Expectation{
		Answer:     "3",
		Acceptable: []string{"3", "three", "tree", "free"},
	}

	tests := []struct {
		transcript string
		want       bool
	}{
		{"3", true},
		{" 3 ", true},
		{"Three", true},
		{"I think free", true}, // variant appears inside the transcript
		{"thr", true},          // transcript appears inside a variant
		{"seven", false},
		{"", false},
		{"   ", false},
		{"the answer is 3", true},     // digit run matches
		{"it's not 3, it's 13", true}, // lenient: 3 is among the digit runs
		{"13", true},                  // known leniency: "3" is a substring
		{"31", true},
	}

	for _, tc := range tests {
		got := EvaluateAnswer(tc.transcript, exp)
		if got != tc.want {
			t.Errorf("EvaluateAnswer(%q) = %v, want %v", tc.transcript, got, tc.want)
		}
	}
}

func TestEvaluateAnswer_WordExpected(t *testing.T) {
	exp := &Expectation{
		Answer:     "second",
		Acceptable: []string{"second", "2", "two", "the second", "right"},
	}

	tests := []struct {
		transcript string
		want       bool
	}{
		{"second", true},
		{"SECOND", true},
		{"the second one", true},
		{"I pick the right one", true},
		{"2", true},
		{"first", false},
	}

	for _, tc := range tests {
		got := EvaluateAnswer(tc.transcript, exp)
		if got != tc.want {
			t.Errorf("EvaluateAnswer(%q) = %v, want %v", tc.transcript, got, tc.want)
		}
	}
}

func TestEvaluateAnswer_NoExpectation(t *testing.T) {
	if !EvaluateAnswer("anything at all", nil) {
		t.Error("nil expectation must evaluate as correct")
	}
	if !EvaluateAnswer("", nil) {
		t.Error("nil expectation must evaluate as correct even for empty input")
	}
	if !EvaluateAnswer("whatever", &Expectation{}) {
		t.Error("empty expected answer must evaluate as correct")
	}
}

func TestEvaluateAnswer_EmptyVariantIgnored(t *testing.T) {
	exp := &Expectation{
		Answer:     "4",
		Acceptable: []string{"", "four"},
	}
	// An empty variant must not make every transcript a substring match.
	if EvaluateAnswer("banana", exp) {
		t.Error("empty acceptable variant must be ignored")
	}
	if !EvaluateAnswer("four", exp) {
		t.Error("non-empty variant should still match")
	}
}

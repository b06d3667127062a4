package teaching

import (
	"regexp"
	"strings"
)

var digitRuns = regexp.MustCompile(`\d+`)

// EvaluateAnswer decides whether a free-text transcript answers the
// pending expectation. A transcript is correct when it exactly matches
// the expected answer (case-insensitive), when it and any acceptable
// variant contain each other, or when the expected answer appears among
// the digit runs in the transcript. The digit rule is deliberately
// lenient: "it's not 3, it's 13" still matches an expected "3".
//
// A nil expectation is treated as correct so stray calls cannot strand
// a session. An empty transcript is never correct.
func EvaluateAnswer(transcript string, exp *Expectation) bool {
	if exp == nil || exp.Answer == "" {
		return true
	}

	normalized := strings.ToLower(strings.TrimSpace(transcript))
	if normalized == "" {
		return false
	}

	if normalized == strings.ToLower(exp.Answer) {
		return true
	}

	for _, acceptable := range exp.Acceptable {
		a := strings.ToLower(acceptable)
		if a == "" {
			continue
		}
		if strings.Contains(normalized, a) || strings.Contains(a, normalized) {
			return true
		}
	}

	for _, run := range digitRuns.FindAllString(transcript, -1) {
		if run == exp.Answer {
			return true
		}
	}

	return false
}

package server

import (
	"regexp"
	"strings"

	"github.com/abhisek/learno/internal/tutor"
)

// unsafeChars are stripped from identity fields before they reach logs
// or the journal.
var unsafeChars = regexp.MustCompile(`[<>"'/\\]`)

// angleBrackets are stripped from transcripts; everything else a child
// might say is kept verbatim for evaluation.
var angleBrackets = regexp.MustCompile(`[<>]`)

const maxSilenceSeconds = 300

type startRequest struct {
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	Grade       int    `json:"grade"`
	Subject     string `json:"subject"`
	Lesson      string `json:"lesson"`
}

func (r startRequest) validate() (tutor.StartRequest, error) {
	subject, err := sanitizeRequired("subject", r.Subject)
	if err != nil {
		return tutor.StartRequest{}, err
	}
	lesson, err := sanitizeRequired("lesson", r.Lesson)
	if err != nil {
		return tutor.StartRequest{}, err
	}
	return tutor.StartRequest{
		StudentID:   sanitizeIdentity(r.StudentID, "default", 100),
		StudentName: sanitizeIdentity(r.StudentName, "Student", 50),
		Grade:       r.Grade,
		Subject:     subject,
		Lesson:      lesson,
	}, nil
}

type sessionRequest struct {
	SessionID string `json:"session_id"`
}

func (r sessionRequest) validate() (string, error) {
	id := strings.TrimSpace(r.SessionID)
	if id == "" {
		return "", badRequest("session_id is required")
	}
	return id, nil
}

type respondRequest struct {
	SessionID  string  `json:"session_id"`
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence,omitempty"`
}

func (r respondRequest) validate() (id, transcript string, err error) {
	id, err = sessionRequest{SessionID: r.SessionID}.validate()
	if err != nil {
		return "", "", err
	}
	t := strings.TrimSpace(r.Transcript)
	if t == "" {
		return "", "", badRequest("transcript is required")
	}
	// Sanitizing may legitimately empty the transcript; that still
	// evaluates, as an incorrect answer.
	t = angleBrackets.ReplaceAllString(t, "")
	return id, truncate(t, 500), nil
}

type silenceRequest struct {
	SessionID       string  `json:"session_id"`
	SilenceDuration float64 `json:"silence_duration"`
}

func (r silenceRequest) validate() (id string, seconds int, err error) {
	id, err = sessionRequest{SessionID: r.SessionID}.validate()
	if err != nil {
		return "", 0, err
	}
	if r.SilenceDuration <= 0 {
		return "", 0, badRequest("silence_duration must be positive")
	}
	d := r.SilenceDuration
	if d > maxSilenceSeconds {
		d = maxSilenceSeconds
	}
	return id, int(d), nil
}

// sanitizeIdentity trims, strips unsafe characters, and caps length.
// Only a missing value falls back to the default.
func sanitizeIdentity(v, fallback string, max int) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return truncate(unsafeChars.ReplaceAllString(v, ""), max)
}

func sanitizeRequired(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", badRequest("%s is required", field)
	}
	return truncate(unsafeChars.ReplaceAllString(v, ""), 100), nil
}

// truncate caps v at max characters, not bytes, so a cap never splits
// an emoji.
func truncate(v string, max int) string {
	runes := []rune(v)
	if len(runes) <= max {
		return v
	}
	return string(runes[:max])
}

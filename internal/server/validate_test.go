package server

import (
	"strings"
	"testing"
)

func TestSanitizeIdentity(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		fallback string
		max      int
		want     string
	}{
		{"plain", "kid-1", "default", 100, "kid-1"},
		{"empty uses fallback", "", "default", 100, "default"},
		{"whitespace uses fallback", "   ", "default", 100, "default"},
		{"strips unsafe characters", `<b>Mina</b> O'Neil\`, "Student", 50, "bMinab ONeil"},
		{"caps length", strings.Repeat("a", 60), "Student", 50, strings.Repeat("a", 50)},
		{"sanitized to empty stays empty", `<>"'`, "default", 100, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeIdentity(tt.in, tt.fallback, tt.max); got != tt.want {
				t.Errorf("sanitizeIdentity(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStartRequestValidate(t *testing.T) {
	req := startRequest{
		StudentID:   "",
		StudentName: "  ",
		Grade:       2,
		Subject:     " Math ",
		Lesson:      "Counting",
	}
	in, err := req.validate()
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if in.StudentID != "default" || in.StudentName != "Student" {
		t.Errorf("identity defaults = %q / %q", in.StudentID, in.StudentName)
	}
	if in.Subject != "Math" || in.Lesson != "Counting" {
		t.Errorf("subject/lesson = %q / %q", in.Subject, in.Lesson)
	}

	if _, err := (startRequest{Grade: 2, Subject: "math"}).validate(); err == nil {
		t.Error("missing lesson should fail")
	}
}

func TestRespondRequestValidate(t *testing.T) {
	_, transcript, err := respondRequest{
		SessionID:  "s1",
		Transcript: " I think it's <b>3</b>! ",
	}.validate()
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if transcript != "I think it's b3/b!" {
		t.Errorf("transcript = %q", transcript)
	}

	if _, _, err := (respondRequest{SessionID: "s1", Transcript: "  "}).validate(); err == nil {
		t.Error("blank transcript should fail")
	}
	if _, _, err := (respondRequest{Transcript: "3"}).validate(); err == nil {
		t.Error("missing session_id should fail")
	}

	// A transcript that is nothing but stripped characters still
	// validates; it just evaluates as incorrect.
	_, transcript, err = respondRequest{SessionID: "s1", Transcript: "<>"}.validate()
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if transcript != "" {
		t.Errorf("transcript = %q, want empty", transcript)
	}

	long := strings.Repeat("7", 600)
	_, transcript, err = respondRequest{SessionID: "s1", Transcript: long}.validate()
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(transcript) != 500 {
		t.Errorf("transcript length = %d, want 500", len(transcript))
	}
}

func TestSilenceRequestValidate(t *testing.T) {
	_, secs, err := silenceRequest{SessionID: "s1", SilenceDuration: 12.8}.validate()
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if secs != 12 {
		t.Errorf("seconds = %d, want 12", secs)
	}

	_, secs, err = silenceRequest{SessionID: "s1", SilenceDuration: 900}.validate()
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if secs != maxSilenceSeconds {
		t.Errorf("seconds = %d, want clamp to %d", secs, maxSilenceSeconds)
	}

	if _, _, err := (silenceRequest{SessionID: "s1", SilenceDuration: -3}).validate(); err == nil {
		t.Error("negative duration should fail")
	}
	if _, _, err := (silenceRequest{SessionID: "s1"}).validate(); err == nil {
		t.Error("zero duration should fail")
	}
}

func TestTruncateIsRuneSafe(t *testing.T) {
	in := "count 🎈🎈🎈"
	got := truncate(in, 8)
	if got != "count 🎈🎈" {
		t.Errorf("truncate = %q", got)
	}
	if truncate("short", 10) != "short" {
		t.Error("short strings pass through")
	}
}

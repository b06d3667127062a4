package console

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/learno/internal/content"
	"github.com/abhisek/learno/internal/logger"
	"github.com/abhisek/learno/internal/session"
	"github.com/abhisek/learno/internal/tutor"
)

// stubSpeaker answers every phrasing request with a marker so tests can
// tell which purpose was spoken, or fails on demand.
type stubSpeaker struct {
	fail bool
}

func (s *stubSpeaker) Say(_ context.Context, purpose, _ string) (string, error) {
	if s.fail {
		return "", errors.New("model offline")
	}
	return "say:" + purpose, nil
}

func testOptions() (Options, *stubSpeaker) {
	speaker := &stubSpeaker{}
	catalog := content.NewCatalog()
	sessions := session.NewStore(30 * time.Minute)
	tut := tutor.New(sessions, catalog, speaker, logger.Nop())

	return Options{
		Tutor:        tut,
		Catalog:      catalog,
		SilenceAfter: 10 * time.Second,
	}, speaker
}

func countingRequest() tutor.StartRequest {
	return tutor.StartRequest{
		StudentID:   "console",
		StudentName: "Mina",
		Grade:       2,
		Subject:     "math",
		Lesson:      "counting",
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestModelStartsOnWelcome(t *testing.T) {
	opts, _ := testOptions()
	m := NewModel(opts)

	active := m.router.Active()
	if active == nil {
		t.Fatal("expected an active screen")
	}
	if active.Title() != "Welcome" {
		t.Errorf("initial screen = %q, want Welcome", active.Title())
	}
}

func TestModelTracksWindowSize(t *testing.T) {
	opts, _ := testOptions()
	m := NewModel(opts)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	mm := updated.(Model)
	if mm.width != 100 || mm.height != 40 {
		t.Errorf("size = %dx%d, want 100x40", mm.width, mm.height)
	}
}

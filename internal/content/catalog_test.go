package content

import "testing"

func TestChapterLookupAliases(t *testing.T) {
	c := NewCatalog()

	aliases := []string{
		"counting",
		"Counting",
		"  counting  ",
		"counting fun",
		"counting fun adventure",
		"COUNTING FUN ADVENTURE",
		"numbers",
		"count",
		"math basics",
	}

	for _, id := range aliases {
		ch, ok := c.Chapter(id)
		if !ok {
			t.Errorf("Chapter(%q): not found", id)
			continue
		}
		if ch.ID != "counting" {
			t.Errorf("Chapter(%q) resolved to %q, want counting", id, ch.ID)
		}
	}
}

func TestChapterLookupUnknown(t *testing.T) {
	c := NewCatalog()
	if _, ok := c.Chapter("long division"); ok {
		t.Error("expected unknown chapter to be absent")
	}
	if c.DefaultChapter() == nil {
		t.Fatal("default chapter must always exist")
	}
}

func TestAvailable(t *testing.T) {
	c := NewCatalog()

	tests := []struct {
		grade   int
		subject string
		lesson  string
		want    bool
	}{
		{2, "math", "counting", true},
		{2, "Math", "Counting", true},
		{2, " MATH ", " counting ", true},
		{2, "math", "comparing and ordering", true},
		{2, "math", "skip counting and number patterns", true},
		{2, "math", "names of numbers", true},
		{2, "math", "even and odd", true},
		{2, "math", "mixed operations: one digit", true},
		{2, "math", "mixed operations one digit", true},
		{2, "science", "counting", false},
		{3, "math", "counting", false},
		{2, "math", "calculus", false},
		{2, "math", "", false},
	}

	for _, tt := range tests {
		got := c.Available(tt.grade, tt.subject, tt.lesson)
		if got != tt.want {
			t.Errorf("Available(%d, %q, %q) = %v, want %v",
				tt.grade, tt.subject, tt.lesson, got, tt.want)
		}
	}
}

func TestTopics(t *testing.T) {
	c := NewCatalog()

	topics := c.Topics()
	if len(topics) == 0 {
		t.Fatal("catalog must list at least one topic")
	}
	for _, topic := range topics {
		if !c.Available(2, "math", topic) {
			t.Errorf("listed topic %q is not available", topic)
		}
	}

	topics[0] = "mutated"
	if c.Topics()[0] == "mutated" {
		t.Error("Topics must return a copy")
	}
}

func TestCountingChapterShape(t *testing.T) {
	ch := NewCatalog().DefaultChapter()

	if ch.TotalConcepts() != 5 {
		t.Fatalf("counting chapter has %d concepts, want 5", ch.TotalConcepts())
	}
	if len(ch.ReviewQuestions) != 4 {
		t.Fatalf("counting chapter has %d review questions, want 4", len(ch.ReviewQuestions))
	}
	if ch.WelcomeScript == "" || ch.CompletionScript == "" {
		t.Error("welcome and completion scripts must be present")
	}

	for i := range ch.Concepts {
		con := &ch.Concepts[i]
		if con.ID == "" || con.Name == "" {
			t.Errorf("concept %d missing id or name", i)
		}
		if len(con.Guided) == 0 || len(con.Independent) == 0 {
			t.Errorf("concept %q needs guided and independent questions", con.ID)
		}
		if con.Mastery.Text == "" || con.Mastery.Answer == "" {
			t.Errorf("concept %q missing mastery check", con.ID)
		}
		if con.VisualDescription == "" {
			t.Errorf("concept %q missing visual description", con.ID)
		}
		for _, q := range append(append([]Question{}, con.Guided...), con.Independent...) {
			if q.Answer == "" {
				t.Errorf("concept %q has a question with no expected answer", con.ID)
			}
		}
	}

	if ch.Concept(-1) != nil || ch.Concept(ch.TotalConcepts()) != nil {
		t.Error("out-of-range concept lookup must return nil")
	}
}

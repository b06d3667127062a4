package session

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore(timeout time.Duration) (*Store, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	return NewStore(timeout, WithClock(clock.Now)), clock
}

func TestCreateAndGet(t *testing.T) {
	store, _ := newTestStore(30 * time.Minute)

	sess := store.Create("stu-1", "Maya", 2, "Math", "Counting")
	if sess.ID == "" {
		t.Fatal("expected a session id")
	}
	if sess.Grade != 2 || sess.Subject != "Math" || sess.Lesson != "Counting" {
		t.Errorf("unexpected session fields: %+v", sess)
	}

	got, err := store.Get(sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != sess.ID {
		t.Errorf("got session %s, want %s", got.ID, sess.ID)
	}
	if store.Count() != 1 {
		t.Errorf("Count = %d, want 1", store.Count())
	}
}

func TestGetUnknownID(t *testing.T) {
	store, _ := newTestStore(30 * time.Minute)

	if _, err := store.Get("nope"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGetRefreshesActivity(t *testing.T) {
	store, clock := newTestStore(30 * time.Minute)
	sess := store.Create("stu-1", "Maya", 2, "Math", "Counting")

	// Keep touching the session just under the timeout. It must
	// survive indefinitely as long as activity continues.
	for i := 0; i < 5; i++ {
		clock.Advance(29 * time.Minute)
		if _, err := store.Get(sess.ID); err != nil {
			t.Fatalf("touch %d: %v", i, err)
		}
	}
}

func TestExpiredSessionIsRemoved(t *testing.T) {
	store, clock := newTestStore(30 * time.Minute)
	sess := store.Create("stu-1", "Maya", 2, "Math", "Counting")

	clock.Advance(31 * time.Minute)

	if _, err := store.Get(sess.ID); err != ErrExpired {
		t.Fatalf("err = %v, want ErrExpired", err)
	}
	// The record is gone, so a second lookup misses entirely.
	if _, err := store.Get(sess.ID); err != ErrNotFound {
		t.Errorf("second Get err = %v, want ErrNotFound", err)
	}
	if store.Count() != 0 {
		t.Errorf("Count = %d, want 0", store.Count())
	}
}

func TestExpiryBoundary(t *testing.T) {
	store, clock := newTestStore(30 * time.Minute)
	sess := store.Create("stu-1", "Maya", 2, "Math", "Counting")

	// Exactly at the timeout the session is still alive.
	clock.Advance(30 * time.Minute)
	if _, err := store.Get(sess.ID); err != nil {
		t.Fatalf("Get at boundary: %v", err)
	}
}

func TestUpdatePersistsFields(t *testing.T) {
	store, clock := newTestStore(30 * time.Minute)
	sess := store.Create("stu-1", "Maya", 2, "Math", "Counting")

	clock.Advance(10 * time.Minute)
	sess.TotalSteps = 7
	sess.Complete = true
	store.Update(sess)

	got, err := store.Get(sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.TotalSteps != 7 || !got.Complete {
		t.Errorf("update not persisted: %+v", got)
	}
	if got.LastActivity != clock.Now() {
		t.Errorf("LastActivity = %v, want %v", got.LastActivity, clock.Now())
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	store, _ := newTestStore(30 * time.Minute)
	sess := store.Create("stu-1", "Maya", 2, "Math", "Counting")

	store.Delete(sess.ID)
	store.Delete(sess.ID)

	if _, err := store.Get(sess.ID); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	store, clock := newTestStore(30 * time.Minute)
	a := store.Create("stu-1", "Maya", 2, "Math", "Counting")

	clock.Advance(20 * time.Minute)
	b := store.Create("stu-2", "Omar", 2, "Math", "Counting")

	clock.Advance(15 * time.Minute)

	// a has been idle 35 minutes, b only 15.
	if _, err := store.Get(a.ID); err != ErrExpired {
		t.Errorf("a: err = %v, want ErrExpired", err)
	}
	if _, err := store.Get(b.ID); err != nil {
		t.Errorf("b: unexpected err %v", err)
	}
}

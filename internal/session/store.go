package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrExpired  = errors.New("session expired")
)

// Session is one learner's active lesson. Records live in memory for
// the lifetime of the process; there is no durable session state.
type Session struct {
	ID          string
	StudentID   string
	StudentName string
	Grade       int
	Subject     string
	Lesson      string

	CreatedAt    time.Time
	LastActivity time.Time
	TotalSteps   int
	Complete     bool
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source. Tests use this to control
// expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store holds sessions keyed by id. It is safe for concurrent use
// across different session ids; callers are responsible for serializing
// operations against a single session.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	timeout  time.Duration
	now      func() time.Time
}

// NewStore creates a session store. Sessions expire lazily once the
// time since their last activity exceeds timeout.
func NewStore(timeout time.Duration, opts ...Option) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		timeout:  timeout,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create allocates a new session. It always succeeds.
func (s *Store) Create(studentID, studentName string, grade int, subject, lesson string) *Session {
	now := s.now()
	sess := &Session{
		ID:           uuid.NewString(),
		StudentID:    studentID,
		StudentName:  studentName,
		Grade:        grade,
		Subject:      subject,
		Lesson:       lesson,
		CreatedAt:    now,
		LastActivity: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session for id, refreshing its activity timestamp.
// Unknown ids return ErrNotFound. A session whose last activity is
// older than the timeout is deleted and ErrExpired is returned.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}

	now := s.now()
	if now.Sub(sess.LastActivity) > s.timeout {
		delete(s.sessions, id)
		return nil, ErrExpired
	}

	sess.LastActivity = now
	return sess, nil
}

// Update refreshes the session's activity timestamp and persists its
// fields.
func (s *Store) Update(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.LastActivity = s.now()
	s.sessions[sess.ID] = sess
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Count returns the number of live sessions. Expired but not yet
// collected sessions are counted until something touches them.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

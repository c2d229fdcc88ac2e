package game

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionOver     = errors.New("session already completed")
)

const (
	StatePlaying   = "playing"
	StateCompleted = "completed"

	// TotalQuestions is the fixed length of a game session.
	TotalQuestions = 5

	// Feedback display delays before the next question, advisory for the
	// client. An incorrect answer still advances, just slower.
	delayCorrectMs = 500
	delayWrongMs   = 1500
)

type Session struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	State        string     `json:"state"`
	Questions    []Question `json:"questions"`
	CurrentIndex int        `json:"current_index"`
	Score        int        `json:"score"`
	FinalTimeMs  int64      `json:"final_time_ms,omitempty"`

	startedAt time.Time
	touchedAt time.Time
}

// snapshot copies the session so callers can read and encode it after the
// manager's lock is released. Questions are never mutated after Start, so
// sharing the backing array is fine.
func (s *Session) snapshot() *Session {
	cp := *s
	return &cp
}

// SubmitResult reports one answer's outcome and how the session advanced.
type SubmitResult struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	NextDelayMs   int    `json:"next_delay_ms"`
	NextIndex     int    `json:"next_index"`
	Score         int    `json:"score"`
	Completed     bool   `json:"completed"`
	FinalTimeMs   int64  `json:"final_time_ms,omitempty"`
}

// Manager owns in-flight game sessions. The stopwatch is the manager's
// clock: elapsed time is measured between Start and the final submission, so
// there is no ticking callback to leak.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	newRand  func() *rand.Rand
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: map[string]*Session{},
		ttl:      ttl,
		now:      time.Now,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// Start generates the question list and begins the stopwatch.
func (m *Manager) Start(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		State:     StatePlaying,
		Questions: GenerateQuestions(m.newRand(), TotalQuestions),
	}
	s.startedAt = m.now()
	s.touchedAt = s.startedAt
	m.sessions[s.ID] = s
	return s.snapshot()
}

func (m *Manager) Get(id, userID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok || s.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return s.snapshot(), nil
}

// Submit checks the answer for the current question and always advances,
// correct or not. The fifth submission completes the session and freezes the
// final time.
func (m *Manager) Submit(id, userID, answer string) (SubmitResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok || s.UserID != userID {
		return SubmitResult{}, ErrSessionNotFound
	}
	if s.State != StatePlaying {
		return SubmitResult{}, ErrSessionOver
	}
	s.touchedAt = m.now()

	q := s.Questions[s.CurrentIndex]
	correct := strings.TrimSpace(answer) == q.Answer
	if correct {
		s.Score++
	}
	res := SubmitResult{
		Correct:       correct,
		CorrectAnswer: q.Answer,
		NextDelayMs:   delayWrongMs,
		Score:         s.Score,
	}
	if correct {
		res.NextDelayMs = delayCorrectMs
	}

	s.CurrentIndex++
	res.NextIndex = s.CurrentIndex
	if s.CurrentIndex >= len(s.Questions) {
		s.State = StateCompleted
		s.FinalTimeMs = m.now().Sub(s.startedAt).Milliseconds()
		res.Completed = true
		res.FinalTimeMs = s.FinalTimeMs
	}
	return res, nil
}

// Sweep drops sessions idle longer than the TTL.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := m.now().Add(-m.ttl)
	n := 0
	for id, s := range m.sessions {
		if s.touchedAt.Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

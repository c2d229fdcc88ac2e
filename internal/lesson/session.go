package lesson

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Answer is the recorded state of one practice problem. Once set it is
// terminal for the session.
type Answer struct {
	Selected string `json:"selected"`
	Correct  bool   `json:"correct"`
}

// Session drives one lesson walkthrough: step navigation plus the ephemeral
// answer state of the practice quiz. It is lost when the learner leaves the
// lesson; completion is persisted separately by the progress committer.
type Session struct {
	ID        string         `json:"id"`
	LessonID  int            `json:"lesson_id"`
	UserID    string         `json:"user_id"`
	StepIndex int            `json:"step_index"`
	Answers   map[int]Answer `json:"answers"`

	celebrated bool
	touchedAt  time.Time
}

// snapshot copies the session so callers can read and encode it after the
// manager's lock is released. The Answers map is the only mutable reference.
func (s *Session) snapshot() *Session {
	cp := *s
	cp.Answers = make(map[int]Answer, len(s.Answers))
	for k, v := range s.Answers {
		cp.Answers[k] = v
	}
	return &cp
}

// SubmitResult reports the outcome of one answer submission.
type SubmitResult struct {
	LessonID    int    `json:"lesson_id"`
	Answer      Answer `json:"answer"`
	Explanation string `json:"explanation"`
	AllCorrect  bool   `json:"all_correct"`
	// Celebrate is set exactly once per session, on the submission that
	// transitions the practice quiz into the all-correct condition.
	Celebrate bool `json:"celebrate"`
}

// Manager owns in-flight lesson sessions. Idle sessions are evicted by Sweep.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: map[string]*Session{},
		ttl:      ttl,
		now:      time.Now,
	}
}

// Start opens a fresh session for the given lesson.
func (m *Manager) Start(lessonID int, userID string) (*Session, error) {
	if _, ok := ByID(lessonID); !ok {
		return nil, fmt.Errorf("unknown lesson %d", lessonID)
	}
	s := &Session{
		ID:       uuid.NewString(),
		LessonID: lessonID,
		UserID:   userID,
		Answers:  map[int]Answer{},
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s.touchedAt = m.now()
	m.sessions[s.ID] = s
	return s.snapshot(), nil
}

func (m *Manager) Get(id, userID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok || s.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return s.snapshot(), nil
}

// SetStep navigates to an explicit step index. Jumping is allowed; only the
// bounds are checked.
func (m *Manager) SetStep(id, userID string, index int) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok || s.UserID != userID {
		return nil, ErrSessionNotFound
	}
	if index < 0 || index >= len(Steps) {
		return nil, fmt.Errorf("step index %d out of range", index)
	}
	s.StepIndex = index
	s.touchedAt = m.now()
	return s.snapshot(), nil
}

// SubmitAnswer records the selected option for one practice problem.
// An unknown problem id is a caller bug and fails. A problem that already
// has an answer keeps it: re-submission is a no-op returning the recorded
// state, never an overwrite.
func (m *Manager) SubmitAnswer(id, userID string, problemID int, selected string) (SubmitResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok || s.UserID != userID {
		return SubmitResult{}, ErrSessionNotFound
	}
	def, _ := ByID(s.LessonID)
	var prob *PracticeProblem
	for i := range def.Practice {
		if def.Practice[i].ID == problemID {
			prob = &def.Practice[i]
			break
		}
	}
	if prob == nil {
		return SubmitResult{}, fmt.Errorf("unknown problem %d in lesson %d", problemID, s.LessonID)
	}
	s.touchedAt = m.now()

	if a, done := s.Answers[problemID]; done {
		return SubmitResult{LessonID: s.LessonID, Answer: a, Explanation: prob.Explanation, AllCorrect: allCorrect(def, s)}, nil
	}

	a := Answer{
		Selected: selected,
		Correct:  strings.TrimSpace(selected) == prob.Answer,
	}
	s.Answers[problemID] = a

	res := SubmitResult{LessonID: s.LessonID, Answer: a, Explanation: prob.Explanation}
	if allCorrect(def, s) {
		res.AllCorrect = true
		if !s.celebrated {
			s.celebrated = true
			res.Celebrate = true
		}
	}
	return res, nil
}

// AllCorrect reports whether every practice problem has a correct recorded
// answer, the gate for marking the lesson complete.
func (m *Manager) AllCorrect(id, userID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok || s.UserID != userID {
		return false, ErrSessionNotFound
	}
	def, _ := ByID(s.LessonID)
	return allCorrect(def, s), nil
}

func allCorrect(def Definition, s *Session) bool {
	for _, p := range def.Practice {
		a, ok := s.Answers[p.ID]
		if !ok || !a.Correct {
			return false
		}
	}
	return true
}

// Sweep drops sessions idle longer than the TTL. Called periodically by the
// gateway.
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

package progress

import (
	"context"
	"sync"
	"time"
)

type memoryStore struct {
	mu   sync.Mutex
	rows map[string]Progress
}

// NewInMemoryStore backs the progress contract with a map, for tests and
// offline runs.
func NewInMemoryStore() Store {
	return &memoryStore{rows: map[string]Progress{}}
}

func (m *memoryStore) Get(ctx context.Context, userID string) (Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[userID]
	if !ok {
		return Progress{}, ErrNoProgress
	}
	return clone(p), nil
}

func (m *memoryStore) CompleteLesson(ctx context.Context, userID string, lessonID int) (Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[userID]
	if !ok {
		p = fresh(userID, lessonID)
	} else {
		p = merge(p, lessonID)
	}
	p.UpdatedAt = time.Now().Unix()
	m.rows[userID] = p
	return clone(p), nil
}

func clone(p Progress) Progress {
	out := p
	out.CompletedLessons = append([]int(nil), p.CompletedLessons...)
	return out
}

package progress

import (
	"context"
	"log"
	"sync"
)

// Service fronts the store with a per-learner cache so navigation surfaces
// (side panel, dashboard, lesson pages) share one view of the row without a
// network read each. The cache holds for the learner's session and is
// replaced on every write.
type Service struct {
	store Store

	mu    sync.RWMutex
	cache map[string]Progress
}

func NewService(store Store) *Service {
	return &Service{store: store, cache: map[string]Progress{}}
}

// Fetch returns the learner's progress, serving the cached row when present.
// A learner with no row gets the zero-progress default (lesson 1 unlocked,
// empty completed set) rather than an error; store failures degrade the same
// way after logging.
func (s *Service) Fetch(ctx context.Context, userID string) Progress {
	s.mu.RLock()
	p, ok := s.cache[userID]
	s.mu.RUnlock()
	if ok {
		return p
	}
	return s.Refresh(ctx, userID)
}

// Refresh re-reads the store and replaces the cached value, returning the new
// row so callers can react without a second read.
func (s *Service) Refresh(ctx context.Context, userID string) Progress {
	p, err := s.store.Get(ctx, userID)
	switch {
	case err == nil:
	case err == ErrNoProgress:
		p = Progress{UserID: userID, CurrentLesson: 1}
	default:
		log.Printf("progress fetch for %s: %v", userID, err)
		return Progress{UserID: userID, CurrentLesson: 1}
	}
	s.mu.Lock()
	s.cache[userID] = p
	s.mu.Unlock()
	return p
}

// CompleteAndAdvance commits a lesson completion and reports where the
// learner goes next. Revisiting an already-completed lesson is pure
// navigation: no store write happens. Unlike fetches, a failed commit is
// returned to the caller so the UI can offer a retry instead of silently
// losing the advancement.
func (s *Service) CompleteAndAdvance(ctx context.Context, userID string, lessonID, lastLesson int) (Progress, int, bool, error) {
	next := lessonID + 1
	done := lessonID >= lastLesson
	if s.Fetch(ctx, userID).Completed(lessonID) {
		return s.Fetch(ctx, userID), next, done, nil
	}
	p, err := s.store.CompleteLesson(ctx, userID, lessonID)
	if err != nil {
		return Progress{}, 0, false, err
	}
	s.mu.Lock()
	s.cache[userID] = p
	s.mu.Unlock()
	return p, next, done, nil
}

// Evict drops the cached row, e.g. on sign-out.
func (s *Service) Evict(userID string) {
	s.mu.Lock()
	delete(s.cache, userID)
	s.mu.Unlock()
}

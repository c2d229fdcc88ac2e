// Package progress is the single source of truth for a learner's advancement
// through the course: the current-lesson pointer and the completed set.
package progress

import (
	"context"
	"errors"
	"sort"
)

// ErrNoProgress means the learner has never completed a lesson. It is a
// "no row yet" signal, not a failure.
var ErrNoProgress = errors.New("no progress yet")

type Progress struct {
	UserID           string `json:"user_id"`
	CurrentLesson    int    `json:"current_lesson"`
	CompletedLessons []int  `json:"completed_lessons"`
	UpdatedAt        int64  `json:"updated_at"`
}

// Completed reports membership in the completed set.
func (p Progress) Completed(lessonID int) bool {
	for _, id := range p.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

// Unlocked mirrors the unlock rule used by navigation: a lesson is reachable
// when its id does not exceed the pointer. Intervening lessons are not
// required to be in the completed set.
func (p Progress) Unlocked(lessonID int) bool {
	return lessonID <= p.CurrentLesson
}

type Store interface {
	// Get returns the learner's row, or ErrNoProgress when none exists.
	Get(ctx context.Context, userID string) (Progress, error)
	// CompleteLesson merges lessonID into the completed set and advances the
	// pointer to max(current, lessonID+1), creating the row lazily. The
	// operation is idempotent and the row is monotonic: the set never
	// shrinks and the pointer never regresses.
	CompleteLesson(ctx context.Context, userID string, lessonID int) (Progress, error)
}

// merge applies the completion update rule to an existing row.
func merge(p Progress, lessonID int) Progress {
	if !p.Completed(lessonID) {
		p.CompletedLessons = append(p.CompletedLessons, lessonID)
		sort.Ints(p.CompletedLessons)
	}
	if next := lessonID + 1; next > p.CurrentLesson {
		p.CurrentLesson = next
	}
	return p
}

// fresh builds the lazily-created first row for a learner.
func fresh(userID string, lessonID int) Progress {
	return Progress{
		UserID:           userID,
		CurrentLesson:    lessonID + 1,
		CompletedLessons: []int{lessonID},
	}
}

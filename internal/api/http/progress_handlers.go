package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vedamath/vedamath-lms/internal/activity"
	"github.com/vedamath/vedamath-lms/internal/auth"
	"github.com/vedamath/vedamath-lms/internal/lesson"
	"github.com/vedamath/vedamath-lms/internal/metrics"
	"github.com/vedamath/vedamath-lms/internal/progress"
)

// GET /progress
func GetProgressHandler(prog *progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := auth.LearnerFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("refresh") == "1" {
			_ = json.NewEncoder(w).Encode(prog.Refresh(r.Context(), l.ID))
			return
		}
		_ = json.NewEncoder(w).Encode(prog.Fetch(r.Context(), l.ID))
	}
}

// POST /lessons/{lessonID}/complete  { "session_id": "..." }
//
// Commits the completion once the session's practice quiz is all-correct.
// Re-completing a finished lesson is pure navigation: no write happens. A
// failed commit is surfaced as retryable instead of leaving the learner
// silently stuck.
func CompleteLessonHandler(prog *progress.Service, mgr *lesson.Manager, alog *activity.Log, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := auth.LearnerFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		id, err := strconv.Atoi(chi.URLParam(r, "lessonID"))
		if err != nil {
			http.Error(w, "bad lesson id", http.StatusBadRequest)
			return
		}
		if _, found := lesson.ByID(id); !found {
			http.Error(w, "lesson not found", http.StatusNotFound)
			return
		}
		var req struct {
			SessionID string `json:"session_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}

		already := prog.Fetch(r.Context(), l.ID).Completed(id)
		if !already {
			allCorrect, err := mgr.AllCorrect(req.SessionID, l.ID)
			if err != nil {
				if errors.Is(err, lesson.ErrSessionNotFound) {
					http.Error(w, "session not found", http.StatusNotFound)
					return
				}
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if !allCorrect {
				http.Error(w, "answer all practice questions correctly first", http.StatusConflict)
				return
			}
		}

		p, next, done, err := prog.CompleteAndAdvance(r.Context(), l.ID, id, lesson.LastLesson)
		if err != nil {
			log.Printf("complete lesson %d for %s: %v", id, l.ID, err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error":     "could not save progress",
				"retryable": true,
			})
			return
		}
		if !already {
			m.LessonsCompleted.WithLabelValues(strconv.Itoa(id)).Inc()
			if alog != nil {
				if err := alog.Append(r.Context(), activity.TypeLessonCompleted, l.ID, map[string]any{"lesson": id}); err != nil {
					log.Printf("activity append: %v", err)
				}
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"progress":        p,
			"next_lesson":     next,
			"course_complete": done,
		})
	}
}

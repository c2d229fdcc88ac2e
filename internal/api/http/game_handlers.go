package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vedamath/vedamath-lms/internal/activity"
	"github.com/vedamath/vedamath-lms/internal/auth"
	"github.com/vedamath/vedamath-lms/internal/game"
	"github.com/vedamath/vedamath-lms/internal/metrics"
	"github.com/vedamath/vedamath-lms/internal/score"
)

// POST /game/sessions
func StartGameHandler(mgr *game.Manager, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := auth.LearnerFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		s := mgr.Start(l.ID)
		m.GameSessions.WithLabelValues("started").Inc()
		_ = json.NewEncoder(w).Encode(s)
	}
}

// GET /game/sessions/{sessionID}
func GetGameHandler(mgr *game.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := auth.LearnerFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		s, err := mgr.Get(chi.URLParam(r, "sessionID"), l.ID)
		if err != nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(s)
	}
}

// POST /game/sessions/{sessionID}/answers  { "answer": "161" }
//
// When the final submission completes the session the result is persisted
// best-effort: a failed save is logged and the learner still gets their
// summary.
func SubmitGameAnswerHandler(mgr *game.Manager, scores score.Store, alog *activity.Log, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := auth.LearnerFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		var req struct {
			Answer string `json:"answer"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		res, err := mgr.Submit(chi.URLParam(r, "sessionID"), l.ID, req.Answer)
		if err != nil {
			if errors.Is(err, game.ErrSessionNotFound) {
				http.Error(w, "session not found", http.StatusNotFound)
				return
			}
			http.Error(w, "session already completed", http.StatusConflict)
			return
		}
		if res.Completed {
			m.GameSessions.WithLabelValues("completed").Inc()
			m.GameDuration.Observe(float64(res.FinalTimeMs) / 1000)
			result := score.Result{
				ID:          uuid.NewString(),
				UserID:      l.ID,
				DisplayName: l.DisplayName,
				Score:       res.Score,
				TimeTakenMs: res.FinalTimeMs,
				CompletedAt: time.Now().Unix(),
			}
			if err := scores.Append(r.Context(), result); err != nil {
				log.Printf("save game result for %s: %v", l.ID, err)
				m.GameScoreSaveErrs.Inc()
			} else {
				m.GameScoreSaved.Inc()
				if alog != nil {
					if err := alog.Append(r.Context(), activity.TypeGameCompleted, l.ID, result); err != nil {
						log.Printf("activity append: %v", err)
					}
				}
			}
		}
		_ = json.NewEncoder(w).Encode(res)
	}
}

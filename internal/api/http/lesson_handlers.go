package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vedamath/vedamath-lms/internal/auth"
	"github.com/vedamath/vedamath-lms/internal/lesson"
	"github.com/vedamath/vedamath-lms/internal/metrics"
	"github.com/vedamath/vedamath-lms/internal/progress"
)

// lessonView is the learner-safe projection: answers and explanations are
// withheld until the learner submits.
type lessonView struct {
	lesson.Definition
	Unlocked  bool `json:"unlocked"`
	Completed bool `json:"completed"`
	Current   bool `json:"current"`
}

func safeDefinition(d lesson.Definition) lesson.Definition {
	out := d
	out.Practice = make([]lesson.PracticeProblem, len(d.Practice))
	for i, p := range d.Practice {
		p.Answer = ""
		p.Explanation = ""
		out.Practice[i] = p
	}
	return out
}

// GET /lessons
func ListLessonsHandler(prog *progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := auth.LearnerFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		p := prog.Fetch(r.Context(), l.ID)
		out := make([]lessonView, 0, lesson.LastLesson)
		for _, d := range lesson.All() {
			out = append(out, lessonView{
				Definition: safeDefinition(d),
				Unlocked:   p.Unlocked(d.ID),
				Completed:  p.Completed(d.ID),
				Current:    d.ID == p.CurrentLesson,
			})
		}
		_ = json.NewEncoder(w).Encode(out)
	}
}

// GET /lessons/{lessonID}
func GetLessonHandler(prog *progress.Service) http.HandlerFunc {
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
		d, found := lesson.ByID(id)
		if !found {
			http.Error(w, "lesson not found", http.StatusNotFound)
			return
		}
		p := prog.Fetch(r.Context(), l.ID)
		if !p.Unlocked(id) {
			http.Error(w, "lesson locked", http.StatusForbidden)
			return
		}
		_ = json.NewEncoder(w).Encode(lessonView{
			Definition: safeDefinition(d),
			Unlocked:   true,
			Completed:  p.Completed(id),
			Current:    id == p.CurrentLesson,
		})
	}
}

// POST /lessons/{lessonID}/sessions
func StartLessonSessionHandler(mgr *lesson.Manager, prog *progress.Service) http.HandlerFunc {
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
		if !prog.Fetch(r.Context(), l.ID).Unlocked(id) {
			http.Error(w, "lesson locked", http.StatusForbidden)
			return
		}
		s, err := mgr.Start(id, l.ID)
		if err != nil {
			http.Error(w, "lesson not found", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(s)
	}
}

// GET /lesson-sessions/{sessionID}
func GetLessonSessionHandler(mgr *lesson.Manager) http.HandlerFunc {
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

// PUT /lesson-sessions/{sessionID}/step  { "index": 3 }
func SetStepHandler(mgr *lesson.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := auth.LearnerFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		var req struct {
			Index int `json:"index"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		s, err := mgr.SetStep(chi.URLParam(r, "sessionID"), l.ID, req.Index)
		if err != nil {
			if errors.Is(err, lesson.ErrSessionNotFound) {
				http.Error(w, "session not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(s)
	}
}

// POST /lesson-sessions/{sessionID}/answers  { "problem_id": 1, "selected": "161" }
func SubmitAnswerHandler(mgr *lesson.Manager, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := auth.LearnerFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		var req struct {
			ProblemID int    `json:"problem_id"`
			Selected  string `json:"selected"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		res, err := mgr.SubmitAnswer(chi.URLParam(r, "sessionID"), l.ID, req.ProblemID, req.Selected)
		if err != nil {
			if errors.Is(err, lesson.ErrSessionNotFound) {
				http.Error(w, "session not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		m.PracticeAnswers.WithLabelValues(strconv.Itoa(res.LessonID), strconv.FormatBool(res.Answer.Correct)).Inc()
		_ = json.NewEncoder(w).Encode(res)
	}
}

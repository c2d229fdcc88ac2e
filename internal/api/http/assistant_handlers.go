package http

import (
	"encoding/json"
	"net/http"

	"github.com/vedamath/vedamath-lms/internal/assistant"
	"github.com/vedamath/vedamath-lms/internal/auth"
	"github.com/vedamath/vedamath-lms/internal/metrics"
	"github.com/vedamath/vedamath-lms/internal/progress"
)

// POST /assistant/chat  { "message": "...", "skill_level": "...", "recent_topics": [...] }
func AssistantChatHandler(svc *assistant.Service, prog *progress.Service, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := auth.LearnerFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		var req struct {
			Message      string   `json:"message"`
			SkillLevel   string   `json:"skill_level"`
			RecentTopics []string `json:"recent_topics"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.Message == "" {
			http.Error(w, "message required", http.StatusBadRequest)
			return
		}
		hints := assistant.ContextHints{
			LessonsCompleted: len(prog.Fetch(r.Context(), l.ID).CompletedLessons),
			SkillLevel:       req.SkillLevel,
			RecentTopics:     req.RecentTopics,
		}
		reply, degraded := svc.SendPrompt(r.Context(), l.ID, req.Message, hints)
		outcome := "ok"
		if degraded {
			outcome = "error"
		}
		m.AssistantRequests.WithLabelValues(outcome).Inc()
		_ = json.NewEncoder(w).Encode(map[string]string{"reply": reply})
	}
}

// DELETE /assistant/history
func ClearAssistantHistoryHandler(svc *assistant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := auth.LearnerFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		svc.ClearHistory(l.ID)
		w.WriteHeader(http.StatusNoContent)
	}
}

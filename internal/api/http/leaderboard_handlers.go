package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vedamath/vedamath-lms/internal/metrics"
	"github.com/vedamath/vedamath-lms/internal/score"
)

// GET /leaderboard?window=all|week|month
func LeaderboardHandler(scores score.Store, limit int, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		win, err := score.ParseWindow(r.URL.Query().Get("window"))
		if err != nil {
			http.Error(w, "bad window", http.StatusBadRequest)
			return
		}
		results, err := scores.ListSince(r.Context(), win.Cutoff(time.Now()))
		if err != nil {
			http.Error(w, "leaderboard unavailable", http.StatusInternalServerError)
			return
		}
		m.LeaderboardReads.WithLabelValues(string(win)).Inc()
		_ = json.NewEncoder(w).Encode(map[string]any{
			"window":  win,
			"entries": score.Reduce(results, limit),
		})
	}
}

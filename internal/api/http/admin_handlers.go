package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/vedamath/vedamath-lms/internal/activity"
)

// GET /admin/activity?limit=50
func RecentActivityHandler(alog *activity.Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 50
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > 1000 {
				http.Error(w, "bad limit", http.StatusBadRequest)
				return
			}
			limit = n
		}
		events, err := alog.Recent(r.Context(), limit)
		if err != nil {
			http.Error(w, "activity unavailable", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(events)
	}
}

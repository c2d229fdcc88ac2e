package http

import (
	"net/http"
	"time"

	"github.com/vedamath/vedamath-lms/internal/auth"
	"github.com/vedamath/vedamath-lms/internal/certificate"
	"github.com/vedamath/vedamath-lms/internal/lesson"
	"github.com/vedamath/vedamath-lms/internal/progress"
)

// GET /certificate
func CertificateHandler(prog *progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := auth.LearnerFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		p := prog.Fetch(r.Context(), l.ID)
		for id := lesson.FirstLesson; id <= lesson.LastLesson; id++ {
			if !p.Completed(id) {
				http.Error(w, "course not complete", http.StatusForbidden)
				return
			}
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := certificate.Render(w, l.DisplayName, time.Now()); err != nil {
			http.Error(w, "render failed", http.StatusInternalServerError)
		}
	}
}

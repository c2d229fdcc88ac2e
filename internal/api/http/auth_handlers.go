package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vedamath/vedamath-lms/internal/auth"
)

// POST /auth/signup  { "username": "...", "display_name": "...", "password": "..." }
func SignUpHandler(svc *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username    string `json:"username"`
			DisplayName string `json:"display_name"`
			Password    string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		u, tok, err := svc.SignUp(r.Context(), req.Username, req.DisplayName, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrUsernameTaken) {
				http.Error(w, "username already taken", http.StatusConflict)
				return
			}
			if errors.Is(err, auth.ErrInvalidCredentials) {
				http.Error(w, "username and password required", http.StatusBadRequest)
				return
			}
			http.Error(w, "sign up failed", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"user": u, "access_token": tok})
	}
}

// POST /auth/login  { "username": "...", "password": "..." }
func LoginHandler(svc *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		u, tok, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"user": u, "access_token": tok})
	}
}

// GET /me
func MeHandler(svc *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := auth.LearnerFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		u, err := svc.GetUser(r.Context(), l.ID)
		if err != nil {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(u)
	}
}

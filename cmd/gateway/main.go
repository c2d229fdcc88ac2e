package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/vedamath/vedamath-lms/internal/api/http"
	"github.com/vedamath/vedamath-lms/internal/activity"
	"github.com/vedamath/vedamath-lms/internal/assistant"
	"github.com/vedamath/vedamath-lms/internal/auth"
	"github.com/vedamath/vedamath-lms/internal/config"
	"github.com/vedamath/vedamath-lms/internal/db"
	"github.com/vedamath/vedamath-lms/internal/game"
	"github.com/vedamath/vedamath-lms/internal/lesson"
	"github.com/vedamath/vedamath-lms/internal/metrics"
	"github.com/vedamath/vedamath-lms/internal/progress"
	"github.com/vedamath/vedamath-lms/internal/rbac"
	"github.com/vedamath/vedamath-lms/internal/score"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	m := metrics.New()
	alog := activity.NewLog(dbh)
	progSvc := progress.NewService(progress.NewSQLStore(dbh, cfg.DBDriver))
	scores := score.NewSQLStore(dbh)
	lessonMgr := lesson.NewManager(cfg.SessionTTL)
	gameMgr := game.NewManager(cfg.SessionTTL)

	// --- Auth ---
	tokens := auth.NewTokenService(cfg.AuthSecret, cfg.TokenTTL)
	authSvc := auth.NewService(auth.NewSQLUserStore(dbh), tokens)

	// --- Assistant (optional) ---
	var assistSvc *assistant.Service
	if cfg.EnableAssistant {
		provider, err := assistant.NewProvider(ctx, assistant.Config{
			Provider: cfg.AssistantProvider,
			Model:    cfg.AssistantModel,
			APIKey:   cfg.AssistantAPIKey,
		})
		if err != nil {
			log.Fatalf("assistant provider: %v", err)
		}
		assistSvc = assistant.NewService(provider)
	}

	// Evict idle lesson/game sessions.
	go func() {
		t := time.NewTicker(10 * time.Minute)
		defer t.Stop()
		for range t.C {
			lessonMgr.Sweep()
			gameMgr.Sweep()
		}
	}()

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/signup", api.SignUpHandler(authSvc))
	r.Post("/auth/login", api.LoginHandler(authSvc))

	// Protected API (JWT → learner in context → rbac gate)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(tokens))

		pr.Get("/me", api.MeHandler(authSvc))

		pr.With(rbac.Require("progress:view")).
			Get("/progress", api.GetProgressHandler(progSvc))

		pr.With(rbac.Require("lesson:view")).
			Get("/lessons", api.ListLessonsHandler(progSvc))
		pr.With(rbac.Require("lesson:view")).
			Get("/lessons/{lessonID}", api.GetLessonHandler(progSvc))
		pr.With(rbac.Require("lesson:practice")).
			Post("/lessons/{lessonID}/sessions", api.StartLessonSessionHandler(lessonMgr, progSvc))
		pr.With(rbac.Require("lesson:practice")).
			Get("/lesson-sessions/{sessionID}", api.GetLessonSessionHandler(lessonMgr))
		pr.With(rbac.Require("lesson:practice")).
			Put("/lesson-sessions/{sessionID}/step", api.SetStepHandler(lessonMgr))
		pr.With(rbac.Require("lesson:practice")).
			Post("/lesson-sessions/{sessionID}/answers", api.SubmitAnswerHandler(lessonMgr, m))
		pr.With(rbac.Require("lesson:complete")).
			Post("/lessons/{lessonID}/complete", api.CompleteLessonHandler(progSvc, lessonMgr, alog, m))

		pr.With(rbac.Require("game:play")).
			Post("/game/sessions", api.StartGameHandler(gameMgr, m))
		pr.With(rbac.Require("game:play")).
			Get("/game/sessions/{sessionID}", api.GetGameHandler(gameMgr))
		pr.With(rbac.Require("game:play")).
			Post("/game/sessions/{sessionID}/answers", api.SubmitGameAnswerHandler(gameMgr, scores, alog, m))

		pr.With(rbac.Require("leaderboard:view")).
			Get("/leaderboard", api.LeaderboardHandler(scores, cfg.LeaderboardLimit, m))

		pr.With(rbac.Require("certificate:view")).
			Get("/certificate", api.CertificateHandler(progSvc))

		pr.With(rbac.Require("activity:view")).
			Get("/admin/activity", api.RecentActivityHandler(alog))

		if assistSvc != nil {
			pr.With(rbac.Require("assistant:chat")).
				Post("/assistant/chat", api.AssistantChatHandler(assistSvc, progSvc, m))
			pr.With(rbac.Require("assistant:chat")).
				Delete("/assistant/history", api.ClearAssistantHistoryHandler(assistSvc))
		}
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Handle("/metrics", promhttp.Handler())

	log.Printf("listening on %s (db=%s, assistant=%v)", cfg.HTTPAddr, cfg.DBDriver, cfg.EnableAssistant)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

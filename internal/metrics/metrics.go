package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus instruments.
type Metrics struct {
	LessonsCompleted  *prometheus.CounterVec
	PracticeAnswers   *prometheus.CounterVec
	GameSessions      *prometheus.CounterVec
	GameScoreSaved    prometheus.Counter
	GameScoreSaveErrs prometheus.Counter
	GameDuration      prometheus.Histogram
	LeaderboardReads  *prometheus.CounterVec
	AssistantRequests *prometheus.CounterVec
}

var (
	once   sync.Once
	shared *Metrics
)

// New registers and returns the process-wide metrics set.
func New() *Metrics {
	once.Do(func() {
		shared = &Metrics{
			LessonsCompleted: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "vedamath_lessons_completed_total",
					Help: "Lesson completions committed to the progress store",
				},
				[]string{"lesson"},
			),
			PracticeAnswers: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "vedamath_practice_answers_total",
					Help: "Practice answers submitted, by correctness",
				},
				[]string{"lesson", "correct"},
			),
			GameSessions: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "vedamath_game_sessions_total",
					Help: "Game sessions by lifecycle event (started, completed)",
				},
				[]string{"event"},
			),
			GameScoreSaved: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "vedamath_game_scores_saved_total",
					Help: "Game results persisted to the score store",
				},
			),
			GameScoreSaveErrs: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "vedamath_game_score_save_errors_total",
					Help: "Best-effort game result saves that failed",
				},
			),
			GameDuration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "vedamath_game_duration_seconds",
					Help:    "Wall-clock duration of completed game sessions",
					Buckets: prometheus.ExponentialBuckets(5, 2, 8), // 5s to ~10m
				},
			),
			LeaderboardReads: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "vedamath_leaderboard_reads_total",
					Help: "Leaderboard queries by window",
				},
				[]string{"window"},
			),
			AssistantRequests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "vedamath_assistant_requests_total",
					Help: "Assistant chat calls by outcome",
				},
				[]string{"outcome"},
			),
		}
	})
	return shared
}

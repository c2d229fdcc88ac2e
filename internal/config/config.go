package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr  string
	PublicURL string

	DBDriver string
	DBDSN    string

	AuthSecret string
	TokenTTL   time.Duration

	CORSOrigins []string

	// Assistant (optional feature; disabled when no API key is set)
	EnableAssistant   bool
	AssistantProvider string // gemini|openai|mock
	AssistantModel    string
	AssistantAPIKey   string

	// Idle lesson/game sessions are evicted after this long.
	SessionTTL time.Duration

	LeaderboardLimit int
}

func FromEnv() Config {
	return Config{
		HTTPAddr:  envOr("HTTP_ADDR", ":8080"),
		PublicURL: os.Getenv("PUBLIC_URL"),

		DBDriver: envOr("DB_DRIVER", "sqlite"),
		DBDSN:    envOr("DB_DSN", ""),

		AuthSecret: envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		TokenTTL:   envDuration("TOKEN_TTL", 8*time.Hour),

		CORSOrigins: csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),

		EnableAssistant:   envBool("ENABLE_ASSISTANT", os.Getenv("ASSISTANT_API_KEY") != ""),
		AssistantProvider: envOr("ASSISTANT_PROVIDER", "gemini"),
		AssistantModel:    os.Getenv("ASSISTANT_MODEL"),
		AssistantAPIKey:   os.Getenv("ASSISTANT_API_KEY"),

		SessionTTL: envDuration("SESSION_TTL", 2*time.Hour),

		LeaderboardLimit: 100,
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

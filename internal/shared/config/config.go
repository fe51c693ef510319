package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration for the API server and the
// pipeline client.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string

	// OCR credential for image uploads. Empty disables OCR with a
	// user-visible message rather than a generic failure.
	GoogleAPIKey string
	VisionAPIURL string

	// Remote endpoints and timeouts used by the resilient pipeline.
	RemoteAPIBaseURL string
	ParseTimeout     time.Duration
	AnalyzeTimeout   time.Duration
}

// Load reads configuration from environment variables with sensible
// defaults. A local .env file is loaded best-effort for dev convenience.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:             getEnv("PORT", "8080"),
		Env:              normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin:  splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		GoogleAPIKey:     os.Getenv("GOOGLE_API_KEY"),
		VisionAPIURL:     getEnv("VISION_API_URL", "https://vision.googleapis.com/v1/images:annotate"),
		RemoteAPIBaseURL: getEnv("REMOTE_API_BASE_URL", "http://localhost:8080"),
		ParseTimeout:     getEnvMillis("PARSE_TIMEOUT_MS", 6000),
		AnalyzeTimeout:   getEnvMillis("ANALYZE_TIMEOUT_MS", 2500),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvMillis(key string, def int) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			return time.Duration(parsed) * time.Millisecond
		}
	}
	return time.Duration(def) * time.Millisecond
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

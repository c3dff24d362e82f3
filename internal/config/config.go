package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	DatabaseURL string
	RedisURL    string

	MeiliSearchHost string
	MeiliMasterKey  string

	CloudinaryUploadFolder string

	GeminiAPIKey string

	// Cron expressions for the background agents.
	DailyResetSchedule string
	TipRefreshSchedule string

	// Topics the tip agent pre-warms, plus the feed it pulls articles from.
	TipTopics  []string
	TipFeedURL string

	PaymentMode     string // "sandbox" or "live"
	CheckoutBaseURL string

	RateLimitActivity time.Duration
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		MeiliSearchHost: getEnv("MEILISEARCH_HOST", "http://localhost:7700"),
		MeiliMasterKey:  os.Getenv("MEILI_MASTER_KEY"),

		CloudinaryUploadFolder: getEnv("CLOUDINARY_UPLOAD_FOLDER", "corgi_quest"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),

		// Reset runs shortly after midnight server time; tips refresh at 6 AM.
		DailyResetSchedule: getEnv("DAILY_RESET_SCHEDULE", "5 0 * * *"),
		TipRefreshSchedule: getEnv("TIP_REFRESH_SCHEDULE", "0 6 * * *"),

		TipTopics:  splitList(getEnv("TIP_TOPICS", "recall,leash,crate,socialization")),
		TipFeedURL: getEnv("TIP_FEED_URL", "https://www.akc.org/expert-advice/training/feed/"),

		PaymentMode:     getEnv("PAYMENT_MODE", "sandbox"),
		CheckoutBaseURL: getEnv("CHECKOUT_BASE_URL", "https://checkout.example.com/session"),
	}

	var err error
	cfg.RateLimitActivity, err = time.ParseDuration(getEnv("RATE_LIMIT_ACTIVITY", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_ACTIVITY: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

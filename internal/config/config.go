package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries all runtime settings. It is built once at startup by Load
// and passed explicitly to the components that need it.
type Config struct {
	Addr     string
	LogLevel string

	SerpAPIKey string

	AIProvider    string
	AIAPIKey      string
	AIBaseURL     string
	AIModel       string
	AIMaxTokens   int
	AITemperature float64
	AIRateLimit   int

	RateLimitWindow time.Duration
	RateLimitMax    int

	SearchResultCount int
	MaxQueryLength    int
	SearchTimeout     time.Duration
}

// Load reads configuration from environment variables. Required values and
// out-of-range overrides fail here rather than on first use.
func Load() (Config, error) {
	cfg := Config{
		Addr:              getEnv("ANSWERBOX_ADDR", ":8080"),
		LogLevel:          getEnv("ANSWERBOX_LOG_LEVEL", "info"),
		SerpAPIKey:        os.Getenv("ANSWERBOX_SERPAPI_KEY"),
		AIProvider:        getEnv("ANSWERBOX_AI_PROVIDER", "openai"),
		AIAPIKey:          os.Getenv("ANSWERBOX_AI_API_KEY"),
		AIBaseURL:         os.Getenv("ANSWERBOX_AI_BASE_URL"),
		AIModel:           getEnv("ANSWERBOX_AI_MODEL", "gpt-4o-mini"),
		AIMaxTokens:       1024,
		AITemperature:     0.3,
		AIRateLimit:       60,
		RateLimitWindow:   60 * time.Second,
		RateLimitMax:      10,
		SearchResultCount: 10,
		MaxQueryLength:    500,
		SearchTimeout:     5 * time.Second,
	}

	if cfg.SerpAPIKey == "" {
		return Config{}, fmt.Errorf("ANSWERBOX_SERPAPI_KEY is required")
	}
	if cfg.AIAPIKey == "" {
		return Config{}, fmt.Errorf("ANSWERBOX_AI_API_KEY is required")
	}

	if err := overrideInt("ANSWERBOX_AI_MAX_TOKENS", &cfg.AIMaxTokens, 1, 32768); err != nil {
		return Config{}, err
	}
	if err := overrideFloat("ANSWERBOX_AI_TEMPERATURE", &cfg.AITemperature, 0, 2); err != nil {
		return Config{}, err
	}
	if err := overrideInt("ANSWERBOX_AI_RATE_LIMIT", &cfg.AIRateLimit, 1, 10000); err != nil {
		return Config{}, err
	}
	if err := overrideDuration("ANSWERBOX_RATE_LIMIT_WINDOW_MS", &cfg.RateLimitWindow, 1000, 3600000); err != nil {
		return Config{}, err
	}
	if err := overrideInt("ANSWERBOX_RATE_LIMIT_MAX", &cfg.RateLimitMax, 1, 1000); err != nil {
		return Config{}, err
	}
	if err := overrideInt("ANSWERBOX_SEARCH_RESULT_COUNT", &cfg.SearchResultCount, 1, 20); err != nil {
		return Config{}, err
	}
	if err := overrideInt("ANSWERBOX_MAX_QUERY_LENGTH", &cfg.MaxQueryLength, 1, 2000); err != nil {
		return Config{}, err
	}
	if err := overrideDuration("ANSWERBOX_SEARCH_TIMEOUT_MS", &cfg.SearchTimeout, 100, 60000); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func overrideInt(key string, target *int, min, max int) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%s: %q is not an integer", key, raw)
	}
	if parsed < min || parsed > max {
		return fmt.Errorf("%s: %d is outside the allowed range [%d, %d]", key, parsed, min, max)
	}
	*target = parsed
	return nil
}

func overrideFloat(key string, target *float64, min, max float64) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%s: %q is not a number", key, raw)
	}
	if parsed < min || parsed > max {
		return fmt.Errorf("%s: %g is outside the allowed range [%g, %g]", key, parsed, min, max)
	}
	*target = parsed
	return nil
}

// overrideDuration reads a millisecond count, bounds included.
func overrideDuration(key string, target *time.Duration, minMS, maxMS int) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%s: %q is not an integer", key, raw)
	}
	if parsed < minMS || parsed > maxMS {
		return fmt.Errorf("%s: %d is outside the allowed range [%d, %d]", key, parsed, minMS, maxMS)
	}
	*target = time.Duration(parsed) * time.Millisecond
	return nil
}

// Package config loads application settings from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DevSecretKey is used when SECRET_KEY is unset. Never use it in production.
const DevSecretKey = "careerinn_dev_secret"

// Config holds every setting the server recognizes.
type Config struct {
	Port        string // HTTP listen port
	SecretKey   string // HMAC key for session cookies
	DatabaseURL string // sqlite://path or postgres://...
	LogLevel    string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	SessionTTL        time.Duration
	SessionCookieName string
	CookieSecure      bool

	UploadDir      string
	MaxUploadBytes int64

	// ContentCacheTTL bounds how long directory listings stay in Redis.
	ContentCacheTTL time.Duration

	AI AIConfig

	// PaymentGatewayKey is recognized but unused: subscribing is a demo flow.
	PaymentGatewayKey string
}

// AIConfig configures the chat completion provider.
type AIConfig struct {
	Provider          string // "groq", "gemini" or empty for auto-detect
	GroqAPIKey        string
	GroqModel         string
	GroqBaseURL       string
	GeminiAPIKey      string
	GeminiModel       string
	Timeout           time.Duration
	RequestsPerMinute int
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		SecretKey:   getEnv("SECRET_KEY", DevSecretKey),
		DatabaseURL: getEnv("DATABASE_URL", "sqlite://careerinn.db"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SessionTTL:        getDuration("SESSION_TTL", 24*time.Hour),
		SessionCookieName: getEnv("SESSION_COOKIE_NAME", "careerinn_session"),
		CookieSecure:      getBool("COOKIE_SECURE", false),

		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes: int64(getInt("MAX_UPLOAD_BYTES", 10*1024*1024)),

		ContentCacheTTL: getDuration("CONTENT_CACHE_TTL", 5*time.Minute),

		AI: AIConfig{
			Provider:          strings.ToLower(os.Getenv("AI_PROVIDER")),
			GroqAPIKey:        os.Getenv("GROQ_API_KEY"),
			GroqModel:         getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
			GroqBaseURL:       getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
			GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Timeout:           getDuration("AI_TIMEOUT", 60*time.Second),
			RequestsPerMinute: getInt("AI_REQUESTS_PER_MINUTE", 0),
		},

		PaymentGatewayKey: os.Getenv("PAYMENT_GATEWAY_KEY"),
	}
}

// RedisEnabled reports whether a Redis host was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env      string // "development", "production", etc.
	LogLevel string // env: LOG_LEVEL, default: "info"

	// Server
	ServerAddr string
	BaseURL    string
	ViewsDir   string // env: VIEWS_DIR, default: "./views"
	StaticDir  string // env: STATIC_DIR, default: "./static"

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // Optional CA for mTLS client verification

	// Session
	SessionSecret string // Used for encrypting cookies (min 32 chars)

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Rate limiting
	RedisURL        string        // Limiter storage; in-memory when empty
	RateLimitMax    int           // env: RATE_LIMIT_MAX, default: 100
	RateLimitWindow time.Duration // env: RATE_LIMIT_WINDOW, default: 1m

	// Chat
	ChatTypingDelay time.Duration // Reported to clients, never slept on
	ChatMaxMessages int           // Conversation cap kept in the session

	// Email (booking confirmations, moderator alerts); disabled unless
	// SMTP_HOST and SMTP_FROM are set
	SMTPHost        string
	SMTPPort        int    // env: SMTP_PORT, default: 587
	SMTPUsername    string
	SMTPPassword    string
	SMTPFrom        string
	SMTPFromName    string // env: SMTP_FROM_NAME, default: SITE_TITLE
	SMTPTLS         string // "none", "tls" or "starttls" (default)
	ModeratorEmails []string

	// Background jobs
	LinkCheckInterval time.Duration // env: LINK_CHECK_INTERVAL, default: 6h, 0 disables

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "NeuroSync"
	SiteTagline string // env: SITE_TAGLINE, default: "Confidential student mental health support"
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:             getEnv("ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ServerAddr:      getEnv("SERVER_ADDR", ":3000"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:3000"),
		ViewsDir:        getEnv("VIEWS_DIR", "./views"),
		StaticDir:       getEnv("STATIC_DIR", "./static"),
		TLSEnabled:      getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:     getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:      getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:       getEnv("TLS_CA_FILE", ""),
		SessionSecret:   getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		CORSOrigins:     getEnv("CORS_ORIGINS", ""),
		RedisURL:        getEnv("REDIS_URL", ""),
		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow: getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		ChatTypingDelay: getEnvDuration("CHAT_TYPING_DELAY", 1500*time.Millisecond),
		ChatMaxMessages: getEnvInt("CHAT_MAX_MESSAGES", 50),

		SMTPHost:        getEnv("SMTP_HOST", ""),
		SMTPPort:        getEnvInt("SMTP_PORT", 587),
		SMTPUsername:    getEnv("SMTP_USERNAME", ""),
		SMTPPassword:    getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:        getEnv("SMTP_FROM", ""),
		SMTPFromName:    getEnv("SMTP_FROM_NAME", getEnv("SITE_TITLE", "NeuroSync")),
		SMTPTLS:         getEnv("SMTP_TLS", "starttls"),
		ModeratorEmails: getEnvList("MODERATOR_EMAILS"),

		LinkCheckInterval: getEnvDuration("LINK_CHECK_INTERVAL", 6*time.Hour),

		SiteTitle:   getEnv("SITE_TITLE", "NeuroSync"),
		SiteTagline: getEnv("SITE_TAGLINE", "Confidential student mental health support"),
		SiteFooter:  getEnv("SITE_FOOTER", "NeuroSync - In an emergency call 911 or the Crisis Helpline: 1-800-273-8255"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d < 0 {
		return fallback
	}
	return d
}

// IsEmailEnabled returns true if enough SMTP settings are present to send mail.
func (c *Config) IsEmailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != ""
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

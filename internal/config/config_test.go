package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "SERVER_ADDR", "RATE_LIMIT_MAX", "RATE_LIMIT_WINDOW", "CHAT_TYPING_DELAY", "CHAT_MAX_MESSAGES", "REDIS_URL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.ServerAddr != ":3000" {
		t.Errorf("ServerAddr = %q", cfg.ServerAddr)
	}
	if !cfg.IsDev() {
		t.Error("default env should be development")
	}
	if cfg.RateLimitMax != 100 || cfg.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d per %v", cfg.RateLimitMax, cfg.RateLimitWindow)
	}
	if cfg.ChatTypingDelay != 1500*time.Millisecond || cfg.ChatMaxMessages != 50 {
		t.Errorf("chat = %v, %d", cfg.ChatTypingDelay, cfg.ChatMaxMessages)
	}
	if cfg.RedisURL != "" {
		t.Errorf("RedisURL = %q, want empty", cfg.RedisURL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("RATE_LIMIT_MAX", "20")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("CHAT_TYPING_DELAY", "0s")
	t.Setenv("CHAT_MAX_MESSAGES", "not-a-number")

	cfg := Load()
	if cfg.IsDev() {
		t.Error("production should not be dev")
	}
	if cfg.RateLimitMax != 20 || cfg.RateLimitWindow != 30*time.Second {
		t.Errorf("rate limit = %d per %v", cfg.RateLimitMax, cfg.RateLimitWindow)
	}
	if cfg.ChatTypingDelay != 0 {
		t.Errorf("ChatTypingDelay = %v, want 0", cfg.ChatTypingDelay)
	}
	if cfg.ChatMaxMessages != 50 {
		t.Errorf("invalid CHAT_MAX_MESSAGES should fall back, got %d", cfg.ChatMaxMessages)
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadYAMLConfigFile(t *testing.T) {
	path := writeFile(t, `
counselors:
  - id: "10"
    name: Dr. Meera Iyer
    specializations: [Anxiety]
    languages: [English, Tamil]
    availability: [Mon, Thu]
    type: campus
    rating: 4.5
    experience: 5 years
time_slots:
  - time: "09:30 AM"
    available: true
resources:
  - id: r1
    title: Sleep Hygiene Basics
    description: A short guide to better sleep.
    type: guide
    category: Sleep
    languages: [English]
    url: https://example.edu/sleep
support_groups:
  - id: g1
    name: Night Owls
    description: Late night study support.
    member_count: 12
    category: Academic
    moderator: Sam
`)

	cfg, err := LoadYAMLConfigFile(path)
	if err != nil {
		t.Fatalf("LoadYAMLConfigFile: %v", err)
	}
	if got := cfg.CounselorList(); len(got) != 1 || got[0].Name != "Dr. Meera Iyer" || got[0].Languages[1] != "Tamil" {
		t.Errorf("counselors = %+v", got)
	}
	if got := cfg.TimeSlotList(); len(got) != 1 || !got[0].Available {
		t.Errorf("time slots = %+v", got)
	}
	if got := cfg.ResourceList(); len(got) != 1 || got[0].URL != "https://example.edu/sleep" {
		t.Errorf("resources = %+v", got)
	}
	if got := cfg.SupportGroupList(); len(got) != 1 || got[0].MemberCount != 12 {
		t.Errorf("support groups = %+v", got)
	}
}

func TestLoadYAMLConfigFile_Missing(t *testing.T) {
	cfg, err := LoadYAMLConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil || cfg != nil {
		t.Fatalf("missing file should be (nil, nil), got (%v, %v)", cfg, err)
	}
	if cfg.CounselorList() != nil || cfg.ResourceList() != nil {
		t.Error("nil config should fall back to defaults")
	}
}

func TestLoadYAMLConfigFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"syntax", "counselors: [", "parse"},
		{"counselor type", "counselors:\n  - id: a\n    name: A\n    type: online\n", "campus or external"},
		{"duplicate counselor", "counselors:\n  - {id: a, name: A, type: campus}\n  - {id: a, name: B, type: campus}\n", "duplicate id"},
		{"resource url", "resources:\n  - {id: r, title: R, type: guide, url: 'ftp://x'}\n", "http:// or https://"},
		{"empty slot", "time_slots:\n  - available: true\n", "empty time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadYAMLConfigFile(writeFile(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %v, want containing %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadYAMLConfigFile_Example(t *testing.T) {
	cfg, err := LoadYAMLConfigFile("../../config.example.yaml")
	if err != nil {
		t.Fatalf("example config should load: %v", err)
	}
	if cfg == nil || len(cfg.CounselorList()) == 0 || len(cfg.SupportGroupList()) == 0 {
		t.Errorf("example config missing sections: %+v", cfg)
	}
}

func TestLoad_Email(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.edu")
	t.Setenv("SMTP_FROM", "care@example.edu")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("MODERATOR_EMAILS", " mod1@example.edu, ,mod2@example.edu ")

	cfg := Load()
	if !cfg.IsEmailEnabled() {
		t.Error("email should be enabled")
	}
	if cfg.SMTPPort != 587 || cfg.SMTPTLS != "starttls" {
		t.Errorf("smtp = %d %q", cfg.SMTPPort, cfg.SMTPTLS)
	}
	if len(cfg.ModeratorEmails) != 2 || cfg.ModeratorEmails[1] != "mod2@example.edu" {
		t.Errorf("ModeratorEmails = %q", cfg.ModeratorEmails)
	}

	t.Setenv("SMTP_FROM", "")
	if Load().IsEmailEnabled() {
		t.Error("email should be disabled without SMTP_FROM")
	}
}

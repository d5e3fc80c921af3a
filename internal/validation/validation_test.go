package validation

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		valid   bool
		wantMsg string
	}{
		{"present", "Exam anxiety", true, ""},
		{"empty", "", false, "Concern is required"},
		{"whitespace", "   ", false, "Concern is required"},
		{"too long", strings.Repeat("a", MaxTextLength+1), false, "Concern is too long"},
		{"max length", strings.Repeat("a", MaxTextLength), true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateRequired("Concern", tt.value)
			if valid != tt.valid {
				t.Errorf("ValidateRequired(%q) valid = %v, want %v", tt.value, valid, tt.valid)
			}
			if msg != tt.wantMsg {
				t.Errorf("ValidateRequired(%q) msg = %q, want %q", tt.value, msg, tt.wantMsg)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"simple", "student@example.edu", true},
		{"plus tag", "student+care@example.edu", true},
		{"empty", "", false},
		{"no at", "student.example.edu", false},
		{"display name", "Student <student@example.edu>", false},
		{"trailing dot domain only", "student@", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, _ := ValidateEmail(tt.email)
			if valid != tt.valid {
				t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, valid, tt.valid)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"", true},
		{"+91 98765 43210", true},
		{"(555) 123-4567", true},
		{"12345", false},
		{"call me", false},
		{"+1-800-273-8255", true},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			valid, _ := ValidatePhone(tt.phone)
			if valid != tt.valid {
				t.Errorf("ValidatePhone(%q) = %v, want %v", tt.phone, valid, tt.valid)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, ok, msg := ParseDate("2026-03-04", time.UTC)
	if !ok {
		t.Fatalf("ParseDate failed: %s", msg)
	}
	if d.Year() != 2026 || d.Month() != time.March || d.Day() != 4 {
		t.Errorf("ParseDate = %v", d)
	}

	if _, ok, msg := ParseDate("04/03/2026", time.UTC); ok || msg != "Date must use YYYY-MM-DD format" {
		t.Errorf("expected format error, got ok=%v msg=%q", ok, msg)
	}
	if _, ok, msg := ParseDate("", time.UTC); ok || msg != "Date is required" {
		t.Errorf("expected required error, got ok=%v msg=%q", ok, msg)
	}
}

func TestNormalizeQuery(t *testing.T) {
	if got := NormalizeQuery("  Exam ANXIETY "); got != "exam anxiety" {
		t.Errorf("NormalizeQuery = %q", got)
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		valid   bool
		wantMsg string
	}{
		{"valid https", "https://example.com", true, ""},
		{"valid http", "http://example.com", true, ""},
		{"valid with path", "https://example.com/path/to/page", true, ""},
		{"empty string", "", false, "URL is required"},
		{"javascript scheme", "javascript:alert(1)", false, "URL must use http:// or https:// scheme"},
		{"data scheme", "data:text/html,<script>alert(1)</script>", false, "URL must use http:// or https:// scheme"},
		{"file scheme", "file:///etc/passwd", false, "URL must use http:// or https:// scheme"},
		{"no scheme", "example.com", false, "URL must use http:// or https:// scheme"},
		{"uppercase scheme", "HTTPS://example.com", true, ""},
		{"scheme only", "https://", false, "URL must have a valid host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateURL(tt.url)
			if valid != tt.valid {
				t.Errorf("ValidateURL(%q) valid = %v, want %v", tt.url, valid, tt.valid)
			}
			if !valid && msg != tt.wantMsg {
				t.Errorf("ValidateURL(%q) msg = %q, want %q", tt.url, msg, tt.wantMsg)
			}
		})
	}
}

func TestIsPrivateIP(t *testing.T) {
	tests := []struct {
		ip      string
		private bool
	}{
		{"127.0.0.1", true},
		{"10.1.2.3", true},
		{"192.168.0.10", true},
		{"172.16.5.4", true},
		{"169.254.169.254", true},
		{"168.63.129.16", true},
		{"0.0.0.0", true},
		{"::1", true},
		{"fe80::1", true},
		{"8.8.8.8", false},
		{"2606:4700:4700::1111", false},
	}

	for _, tt := range tests {
		if got := IsPrivateIP(net.ParseIP(tt.ip)); got != tt.private {
			t.Errorf("IsPrivateIP(%s) = %v, want %v", tt.ip, got, tt.private)
		}
	}
	if IsPrivateIP(nil) {
		t.Error("nil IP should not be private")
	}
}

func TestValidatePublicURL(t *testing.T) {
	// IP literals resolve without touching the network.
	tests := []struct {
		url     string
		valid   bool
		wantMsg string
	}{
		{"http://127.0.0.1:8080/health", false, "URL points to a private or reserved IP address"},
		{"http://169.254.169.254/latest/meta-data", false, "URL points to a private or reserved IP address"},
		{"https://[::1]/", false, "URL points to a private or reserved IP address"},
		{"ftp://8.8.8.8/", false, "URL must use http:// or https:// scheme"},
		{"https://8.8.8.8/", true, ""},
	}

	for _, tt := range tests {
		valid, msg := ValidatePublicURL(context.Background(), tt.url)
		if valid != tt.valid || msg != tt.wantMsg {
			t.Errorf("ValidatePublicURL(%q) = (%v, %q), want (%v, %q)", tt.url, valid, msg, tt.valid, tt.wantMsg)
		}
	}
}

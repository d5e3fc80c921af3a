package email

import (
	"net"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"neurosync/internal/config"
)

type smtpMessage struct {
	from string
	to   []string
	data string
}

// fakeSMTP accepts every command and hands each delivered message to msgs.
type fakeSMTP struct {
	host string
	port int
	msgs chan smtpMessage
}

func startFakeSMTP(t *testing.T) *fakeSMTP {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	addr := ln.Addr().(*net.TCPAddr)
	f := &fakeSMTP{host: "127.0.0.1", port: addr.Port, msgs: make(chan smtpMessage, 4)}

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go f.serve(conn)
		}
	}()
	return f
}

func (f *fakeSMTP) serve(conn net.Conn) {
	defer conn.Close()
	tp := textproto.NewConn(conn)
	_ = tp.PrintfLine("220 localhost ESMTP")

	var m smtpMessage
	for {
		line, err := tp.ReadLine()
		if err != nil {
			return
		}
		cmd := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(cmd, "MAIL FROM:"):
			m.from = strings.Trim(line[len("MAIL FROM:"):], "<> ")
			_ = tp.PrintfLine("250 OK")
		case strings.HasPrefix(cmd, "RCPT TO:"):
			m.to = append(m.to, strings.Trim(line[len("RCPT TO:"):], "<> "))
			_ = tp.PrintfLine("250 OK")
		case cmd == "DATA":
			_ = tp.PrintfLine("354 End data with <CR><LF>.<CR><LF>")
			data, err := tp.ReadDotBytes()
			if err != nil {
				return
			}
			m.data = string(data)
			_ = tp.PrintfLine("250 OK")
			f.msgs <- m
			m = smtpMessage{}
		case cmd == "QUIT":
			_ = tp.PrintfLine("221 Bye")
			return
		default: // EHLO, HELO, RSET, NOOP
			_ = tp.PrintfLine("250 localhost")
		}
	}
}

func (f *fakeSMTP) config() *config.Config {
	return &config.Config{
		SMTPHost:     f.host,
		SMTPPort:     f.port,
		SMTPFrom:     "care@example.edu",
		SMTPFromName: "NeuroSync",
		SMTPTLS:      "none",
		SiteTitle:    "NeuroSync",
		BaseURL:      "https://neurosync.example.edu",
	}
}

func (f *fakeSMTP) wait(t *testing.T) smtpMessage {
	t.Helper()
	select {
	case m := <-f.msgs:
		return m
	case <-time.After(5 * time.Second):
		t.Fatal("no message delivered")
		return smtpMessage{}
	}
}

func TestNewService(t *testing.T) {
	tests := []struct {
		name        string
		cfg         *config.Config
		wantEnabled bool
	}{
		{"enabled with host and from", &config.Config{SMTPHost: "smtp.example.edu", SMTPPort: 587, SMTPFrom: "care@example.edu"}, true},
		{"disabled without host", &config.Config{SMTPPort: 587, SMTPFrom: "care@example.edu"}, false},
		{"disabled without from", &config.Config{SMTPHost: "smtp.example.edu", SMTPPort: 587}, false},
		{"disabled with empty config", &config.Config{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.cfg, zap.NewNop())
			if svc.IsEnabled() != tt.wantEnabled {
				t.Errorf("IsEnabled() = %v, want %v", svc.IsEnabled(), tt.wantEnabled)
			}
		})
	}
}

func TestService_Send_Disabled(t *testing.T) {
	svc := NewService(&config.Config{}, zap.NewNop())
	if err := svc.Send([]string{"student@example.edu"}, "Test", "<p>HTML</p>", "Text"); err != nil {
		t.Errorf("disabled Send should be a no-op, got %v", err)
	}
}

func TestService_Send(t *testing.T) {
	f := startFakeSMTP(t)
	svc := NewService(f.config(), zap.NewNop())

	if err := svc.Send([]string{"student@example.edu"}, "Hello", "<p>Hi</p>", "Hi"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	m := f.wait(t)
	if m.from != "care@example.edu" {
		t.Errorf("MAIL FROM = %q", m.from)
	}
	if len(m.to) != 1 || m.to[0] != "student@example.edu" {
		t.Errorf("RCPT TO = %q", m.to)
	}
	for _, want := range []string{"From: NeuroSync <care@example.edu>", "Subject: Hello", "<p>Hi</p>"} {
		if !strings.Contains(m.data, want) {
			t.Errorf("message missing %q:\n%s", want, m.data)
		}
	}
}

func TestService_Send_Unreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	cfg := &config.Config{SMTPHost: "127.0.0.1", SMTPPort: port, SMTPFrom: "care@example.edu", SMTPTLS: "starttls"}
	if err := NewService(cfg, zap.NewNop()).Send([]string{"a@example.edu"}, "s", "", "t"); err == nil {
		t.Error("expected error for closed port")
	}
}

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("NeuroSync <care@example.edu>", []string{"a@example.edu", "b@example.edu"},
		"Line one\r\nBcc: attacker@example.com", "<p>HTML</p>", "Text")

	if !strings.Contains(msg, "To: a@example.edu, b@example.edu\r\n") {
		t.Error("missing To header")
	}
	if strings.Contains(msg, "\r\nBcc:") {
		t.Error("subject line break allowed header injection")
	}
	if !strings.Contains(msg, "Subject: Line one Bcc: attacker@example.com\r\n") {
		t.Errorf("subject not sanitized:\n%s", msg)
	}

	textAt := strings.Index(msg, "text/plain")
	htmlAt := strings.Index(msg, "text/html")
	if textAt < 0 || htmlAt < 0 || textAt > htmlAt {
		t.Error("expected text part before HTML part")
	}

	if textOnly := buildMessage("x@example.edu", []string{"a@example.edu"}, "s", "", "Text"); strings.Contains(textOnly, "text/html") {
		t.Error("empty HTML body should be left out")
	}
}

func TestFromHeader(t *testing.T) {
	svc := NewService(&config.Config{SMTPFrom: "care@example.edu"}, zap.NewNop())
	if got := svc.fromHeader(); got != "care@example.edu" {
		t.Errorf("fromHeader() = %q", got)
	}

	svc.cfg.SMTPFromName = "Care\r\nTeam"
	if got := svc.fromHeader(); got != "Care Team <care@example.edu>" {
		t.Errorf("fromHeader() = %q", got)
	}
}

// Package email sends booking confirmations and moderator alerts over SMTP.
package email

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"neurosync/internal/config"
)

// headerSanitizer strips line breaks so values cannot inject headers.
var headerSanitizer = strings.NewReplacer("\r", "", "\n", " ")

// Service handles sending email.
type Service struct {
	cfg     *config.Config
	enabled bool
	log     *zap.Logger
}

// NewService creates a new email service. It is a no-op unless SMTP is configured.
func NewService(cfg *config.Config, log *zap.Logger) *Service {
	s := &Service{
		cfg:     cfg,
		enabled: cfg.IsEmailEnabled(),
		log:     log,
	}

	if s.enabled {
		log.Info("email enabled", zap.String("host", cfg.SMTPHost), zap.Int("port", cfg.SMTPPort), zap.String("tls", cfg.SMTPTLS))
	} else {
		log.Info("email disabled (SMTP not configured)")
	}

	return s
}

// IsEnabled returns true if email is enabled.
func (s *Service) IsEnabled() bool {
	return s.enabled
}

// Send delivers a multipart text/HTML message to the recipients.
func (s *Service) Send(to []string, subject, htmlBody, textBody string) error {
	if !s.enabled || len(to) == 0 {
		return nil
	}

	msg := buildMessage(s.fromHeader(), to, subject, htmlBody, textBody)
	addr := net.JoinHostPort(s.cfg.SMTPHost, strconv.Itoa(s.cfg.SMTPPort))

	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" && s.cfg.SMTPPassword != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}

	switch s.cfg.SMTPTLS {
	case "tls":
		conn, err := tls.Dial("tcp", addr, s.tlsConfig())
		if err != nil {
			return fmt.Errorf("TLS dial failed: %w", err)
		}
		client, err := smtp.NewClient(conn, s.cfg.SMTPHost)
		if err != nil {
			conn.Close()
			return fmt.Errorf("SMTP client failed: %w", err)
		}
		return s.deliver(client, auth, to, msg)
	case "starttls":
		client, err := smtp.Dial(addr)
		if err != nil {
			return fmt.Errorf("SMTP dial failed: %w", err)
		}
		if err := client.StartTLS(s.tlsConfig()); err != nil {
			client.Close()
			return fmt.Errorf("STARTTLS failed: %w", err)
		}
		return s.deliver(client, auth, to, msg)
	default: // "none"
		return smtp.SendMail(addr, auth, s.cfg.SMTPFrom, to, []byte(msg))
	}
}

// SendAsync sends in the background and logs the outcome.
func (s *Service) SendAsync(to []string, subject, htmlBody, textBody string) {
	if !s.enabled || len(to) == 0 {
		return
	}

	go func() {
		if err := s.Send(to, subject, htmlBody, textBody); err != nil {
			s.log.Error("failed to send email", zap.Int("recipients", len(to)), zap.String("subject", subject), zap.Error(err))
			return
		}
		s.log.Info("email sent", zap.Int("recipients", len(to)), zap.String("subject", subject))
	}()
}

func (s *Service) deliver(client *smtp.Client, auth smtp.Auth, to []string, msg string) error {
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP auth failed: %w", err)
		}
	}
	if err := client.Mail(s.cfg.SMTPFrom); err != nil {
		return fmt.Errorf("SMTP MAIL failed: %w", err)
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("SMTP RCPT failed: %w", err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("SMTP DATA failed: %w", err)
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("SMTP write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("SMTP close failed: %w", err)
	}
	return client.Quit()
}

func (s *Service) tlsConfig() *tls.Config {
	return &tls.Config{
		ServerName: s.cfg.SMTPHost,
		MinVersion: tls.VersionTLS12,
	}
}

func (s *Service) fromHeader() string {
	if s.cfg.SMTPFromName == "" {
		return s.cfg.SMTPFrom
	}
	return fmt.Sprintf("%s <%s>", headerSanitizer.Replace(s.cfg.SMTPFromName), s.cfg.SMTPFrom)
}

// buildMessage assembles a multipart/alternative MIME message. Empty bodies
// are left out.
func buildMessage(from string, to []string, subject, htmlBody, textBody string) string {
	boundary := "neurosync-" + uuid.NewString()

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&msg, "Subject: %s\r\n", headerSanitizer.Replace(subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	for _, part := range []struct{ contentType, body string }{
		{"text/plain", textBody},
		{"text/html", htmlBody},
	} {
		if part.body == "" {
			continue
		}
		fmt.Fprintf(&msg, "--%s\r\n", boundary)
		fmt.Fprintf(&msg, "Content-Type: %s; charset=\"UTF-8\"\r\n\r\n", part.contentType)
		msg.WriteString(part.body)
		msg.WriteString("\r\n")
	}

	fmt.Fprintf(&msg, "--%s--\r\n", boundary)
	return msg.String()
}

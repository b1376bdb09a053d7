package services

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"path/filepath"
	"strings"

	"errorswag/internal/config"
)

// MailService delivers transactional mail over SMTP. Sending is
// fire-and-forget: failures are logged, never surfaced to the request that
// triggered them.
type MailService struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Enabled  bool
}

func NewMailService(cfg *config.Config) *MailService {
	smtpCfg := cfg.SMTP
	enabled := smtpCfg.Host != "" && smtpCfg.Port != "" && smtpCfg.Username != "" && smtpCfg.Password != "" && smtpCfg.From != ""
	if !enabled {
		log.Println("MailService disabled: missing SMTP configuration")
	}

	return &MailService{
		Host:     smtpCfg.Host,
		Port:     smtpCfg.Port,
		Username: smtpCfg.Username,
		Password: smtpCfg.Password,
		From:     smtpCfg.From,
		Enabled:  enabled,
	}
}

func (s *MailService) sendAsync(to []string, subject string, body string) {
	if !s.Enabled {
		return
	}

	go func() {
		auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
		addr := fmt.Sprintf("%s:%s", s.Host, s.Port)

		mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
		msg := []byte(fmt.Sprintf("To: %s\r\n"+
			"From: ErrorSwag <%s>\r\n"+
			"Subject: %s\r\n"+
			"%s\r\n%s", strings.Join(to, ","), s.From, subject, mime, body))

		err := smtp.SendMail(addr, auth, s.From, to, msg)
		if err != nil {
			log.Printf("Failed to send email to %v: %v", to, err)
		} else {
			log.Printf("Email sent to %v: %s", to, subject)
		}
	}()
}

func (s *MailService) parseTemplate(templateName string, data interface{}) (string, error) {
	path := filepath.Join("web", "templates", "email", templateName)
	t, err := template.ParseFiles(path)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}
	return buf.String(), nil
}

// SendConfirmAccountEmail mails the verification link issued at signup and
// on every unverified login.
func (s *MailService) SendConfirmAccountEmail(name, email, confirmURL string) {
	if !s.Enabled {
		return
	}
	body, err := s.parseTemplate("confirm_account.html", map[string]string{
		"Name":              name,
		"ConfirmAccountURL": confirmURL,
	})
	if err != nil {
		log.Printf("Error rendering confirm account email: %v", err)
		return
	}
	s.sendAsync([]string{email}, "Welcome to ErrorSwag", body)
}

// SendPasswordResetEmail mails a reset link. The reset flow itself is not
// routed yet; the User model already carries the token columns.
func (s *MailService) SendPasswordResetEmail(name, email, resetURL string) {
	if !s.Enabled {
		return
	}
	body, err := s.parseTemplate("password_reset.html", map[string]string{
		"Name":             name,
		"ResetPasswordURL": resetURL,
	})
	if err != nil {
		log.Printf("Error rendering password reset email: %v", err)
		return
	}
	s.sendAsync([]string{email}, "Reset your ErrorSwag password", body)
}

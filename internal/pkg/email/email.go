package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/plantsec/hr-access-backend-go/internal/config"
	"github.com/plantsec/hr-access-backend-go/internal/domain/report"
	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

// EmailService defines the interface for sending alert emails
type EmailService interface {
	SendCriticalAbsenceAlert(date string, absences []report.AbsentEntry) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type criticalAbsenceEmailData struct {
	Date     string
	Absences []report.AbsentEntry
}

// SendCriticalAbsenceAlert notifies HR about employees whose consecutive
// absences reached the critical threshold. A blank SMTP host disables
// sending; the call then logs and returns nil.
func (s *emailServiceImpl) SendCriticalAbsenceAlert(date string, absences []report.AbsentEntry) error {
	if len(absences) == 0 {
		return nil
	}
	if s.cfg.Host == "" || len(s.cfg.AlertsTo) == 0 {
		slog.Info("SMTP not configured, skipping critical absence alert",
			"date", date, "absences", len(absences))
		return nil
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "critical_absences.html", criticalAbsenceEmailData{
		Date:     date,
		Absences: absences,
	}); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", s.cfg.AlertsTo...)
	m.SetHeader("Subject", fmt.Sprintf("Ausencias críticas %s", date))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send critical absence alert: %w", err)
	}

	slog.Info("Critical absence alert sent", "date", date, "absences", len(absences), "recipients", len(s.cfg.AlertsTo))
	return nil
}

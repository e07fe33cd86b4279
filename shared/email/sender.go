package email

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/aref-vc/youtube-content-analyzer/internal/models"
	"github.com/aref-vc/youtube-content-analyzer/shared/config"
)

//go:embed templates/digest.html
var templateFS embed.FS

var digestTemplate = template.Must(template.New("digest.html").Funcs(template.FuncMap{
	"percent":     func(f float64) string { return fmt.Sprintf("%.2f%%", f*100) },
	"score":       func(f float64) string { return fmt.Sprintf("%.1f", f) },
	"topPatterns": topPatterns,
	"first":       firstVideos,
}).ParseFS(templateFS, "templates/digest.html"))

const digestVideosPerChannel = 3

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type Sender struct {
	config *config.EmailConfig
	send   sendFunc
}

func NewSender(cfg *config.EmailConfig) *Sender {
	return &Sender{
		config: cfg,
		send:   smtp.SendMail,
	}
}

// SendDigest mails one summary of the channel reports produced by a run.
// A digest without channels is not sent.
func (s *Sender) SendDigest(report *models.DigestReport) error {
	if report == nil {
		return errors.New("report cannot be nil")
	}

	if len(report.Channels) == 0 {
		return nil
	}

	subject := fmt.Sprintf("Channel Insights Digest - %d Channels, %d Videos (%s)",
		len(report.Channels), report.Total, report.Date.Format("Jan 2, 2006"))

	body, err := RenderDigest(report)
	if err != nil {
		return fmt.Errorf("failed to generate email body: %w", err)
	}

	return s.SendHTML(subject, body)
}

// SendHTML sends an email with custom HTML content
func (s *Sender) SendHTML(subject, htmlBody string) error {
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.SMTPServer)

	to := []string{s.config.ToEmail}
	msg := []byte(fmt.Sprintf(`To: %s
From: %s
Subject: %s
MIME-Version: 1.0
Content-Type: text/html; charset=UTF-8

%s`, s.config.ToEmail, s.config.FromEmail, subject, htmlBody))

	addr := fmt.Sprintf("%s:%d", s.config.SMTPServer, s.config.SMTPPort)
	return s.send(addr, auth, s.config.FromEmail, to, msg)
}

// RenderDigest renders the digest HTML body.
func RenderDigest(report *models.DigestReport) (string, error) {
	var buf bytes.Buffer
	if err := digestTemplate.Execute(&buf, report); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func topPatterns(o models.Outcome[models.PatternAggregate]) []models.PatternCount {
	if !o.OK() {
		return nil
	}
	return o.Data.CommonPatterns
}

func firstVideos(videos []models.VideoReport) []models.VideoReport {
	return videos[:min(len(videos), digestVideosPerChannel)]
}

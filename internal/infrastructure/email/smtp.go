package email

import (
	"context"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"github.com/hostmail-io/hostmail/internal/shared/config"
)

// SMTPNotifier sends owner-facing notification emails over SMTP. When the
// email section is disabled in config every send is a silent no-op so local
// and test environments work without a mail server.
type SMTPNotifier struct {
	cfg    config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPNotifier(cfg config.EmailConfig) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password),
	}
}

func (s *SMTPNotifier) NotifyContactReceived(ctx context.Context, ownerEmail, ownerName, websiteName, senderEmail, senderName, subject, message string) error {
	if !s.cfg.Enabled {
		return nil
	}

	mailSubject := fmt.Sprintf("New contact message on %s", websiteName)
	if subject != "" {
		mailSubject = fmt.Sprintf("New contact message on %s: %s", websiteName, subject)
	}

	from := senderEmail
	if senderName != "" {
		from = fmt.Sprintf("%s <%s>", senderName, senderEmail)
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New contact message</h2>
			<p><strong>Website:</strong> %s</p>
			<p><strong>From:</strong> %s</p>
			<p><strong>Subject:</strong> %s</p>
			<hr>
			<p>%s</p>
		</body>
		</html>
	`, html.EscapeString(websiteName), html.EscapeString(from), html.EscapeString(subject), html.EscapeString(message))

	plainBody := fmt.Sprintf(`Hi %s,

You received a new contact message on %s.

From: %s
Subject: %s

%s
`, ownerName, websiteName, from, subject, message)

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.FromAddress, s.cfg.FromName))
	m.SetHeader("To", ownerEmail)
	m.SetHeader("Reply-To", senderEmail)
	m.SetHeader("Subject", mailSubject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}

	return nil
}

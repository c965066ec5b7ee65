package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"food-order/config"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailService returns an error when SMTP is not configured; callers
// treat the mailer as optional.
func NewEmailService() (*EmailService, error) {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)

	return &EmailService{dialer: dialer, from: cfg.SMTPFrom}, nil
}

func (s *EmailService) SendWelcomeEmail(toEmail, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Welcome to Food Order")

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Welcome, %s!</h2>
    <p>Your account has been created. You can now sign in and place orders.</p>
    <p>If you did not create this account, please contact support.</p>
</body>
</html>
`, name)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}

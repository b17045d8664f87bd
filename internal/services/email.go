package services

import (
	"fmt"
	"net/smtp"

	"github.com/iyforlando/academy-api/internal/config"
)

type EmailService struct {
	cfg config.SMTPConfig
}

func NewEmailService(cfg config.SMTPConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

func (s *EmailService) IsConfigured() bool {
	return s.cfg.Host != "" && s.cfg.Username != "" && s.cfg.Password != "" && s.cfg.From != ""
}

func (s *EmailService) Send(to, subject, body string) error {
	if !s.IsConfigured() {
		return nil
	}

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.cfg.From, to, subject, body)

	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg))
}

func (s *EmailService) SendRegistrationConfirmation(to, studentName, academyName, season string) error {
	subject := fmt.Sprintf("Registration received for %s", academyName)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Registration Received</h2>
			<p>Hi,</p>
			<p>We received a registration for <strong>%s</strong> in <strong>%s</strong> (%s).</p>
			<p>You will get another email once the registration is confirmed.</p>
			<p>IYF Orlando</p>
		</body>
		</html>
	`, studentName, academyName, season)

	return s.Send(to, subject, body)
}

func (s *EmailService) SendPaymentReceipt(to, academyName string, amountCents, balanceCents int64) error {
	subject := fmt.Sprintf("Payment received for %s", academyName)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Payment Received</h2>
			<p>Hi,</p>
			<p>We received a payment of <strong>$%.2f</strong> for <strong>%s</strong>.</p>
			<p>Remaining balance: $%.2f.</p>
			<p>IYF Orlando</p>
		</body>
		</html>
	`, float64(amountCents)/100, academyName, float64(balanceCents)/100)

	return s.Send(to, subject, body)
}

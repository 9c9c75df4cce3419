package services

import (
	"fmt"
	"log"
	"net/smtp"

	"eyenova-backend/config"
)

// EmailService delivers OTP codes over SMTP. Delivery failures are logged
// together with the code so operators can relay it manually; the caller
// never fails because of a mail outage.
type EmailService struct {
	cfg config.EmailConfig
}

func NewEmailService() *EmailService {
	return &EmailService{cfg: config.Get().Email}
}

// SendOTP mails a one-time code to the recipient.
func (s *EmailService) SendOTP(to, code, purpose string) error {
	if s.cfg.SMTPHost == "" || s.cfg.Username == "" {
		log.Printf("Email not configured, OTP for %s (%s): %s", to, purpose, code)
		return nil
	}

	msg := buildOTPMail(s.cfg.FromName, s.cfg.FromEmail, to, code, purpose)

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)
	if err := smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{to}, msg); err != nil {
		log.Printf("Failed to send OTP email to %s: %v (OTP: %s)", to, err, code)
		return nil
	}

	log.Printf("OTP email sent to %s (%s)", to, purpose)
	return nil
}

// buildOTPMail renders a multipart/alternative message with plain-text and
// HTML bodies.
func buildOTPMail(fromName, fromEmail, to, code, purpose string) []byte {
	const boundary = "eyenova-otp-boundary"

	plain := fmt.Sprintf(
		"Hello,\r\n\r\nYour verification code for %s is: %s\r\n\r\n"+
			"The code expires in a few minutes. If you did not request it, ignore this email.\r\n",
		purpose, code,
	)
	html := fmt.Sprintf(
		`<html><body style="font-family:sans-serif">`+
			`<p>Hello,</p>`+
			`<p>Your verification code for %s is:</p>`+
			`<h2 style="letter-spacing:4px">%s</h2>`+
			`<p>The code expires in a few minutes. If you did not request it, ignore this email.</p>`+
			`</body></html>`,
		purpose, code,
	)

	headers := fmt.Sprintf(
		"From: %s <%s>\r\nTo: %s\r\nSubject: Your EyeNova verification code\r\n"+
			"MIME-Version: 1.0\r\nContent-Type: multipart/alternative; boundary=%q\r\n\r\n",
		fromName, fromEmail, to, boundary,
	)
	body := fmt.Sprintf(
		"--%s\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s\r\n"+
			"--%s\r\nContent-Type: text/html; charset=\"utf-8\"\r\n\r\n%s\r\n--%s--\r\n",
		boundary, plain, boundary, html, boundary,
	)

	return []byte(headers + body)
}

package mailer

import (
	"fmt"
	"io"

	"restaurant-pos-api/config"

	gomail "gopkg.in/gomail.v2"
)

// Sender dispatches the two notification kinds the POS needs. Handlers
// depend on this interface so tests can drop in a stub.
type Sender interface {
	// SendOTP mails a signup verification code, valid for 5 minutes.
	SendOTP(to, code string) error
	// SendReceipt mails a payment confirmation with the PDF attached.
	SendReceipt(to string, amount float64, pdf []byte) error
}

type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *SMTPSender) SendOTP(to, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your OTP Verification Code")
	m.SetBody("text/html", fmt.Sprintf("<h2>Your OTP is: <b>%s</b></h2><p>Valid for 5 minutes</p>", code))
	return s.dialer.DialAndSend(m)
}

func (s *SMTPSender) SendReceipt(to string, amount float64, pdf []byte) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your Payment Receipt - Odoo Cafe")
	m.SetBody("text/plain", fmt.Sprintf("Thank you for your payment of %.2f. Please find your receipt attached.", amount))
	m.Attach("receipt.pdf", gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(pdf)
		return err
	}))
	return s.dialer.DialAndSend(m)
}

package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/VivekWar/ABRC/config"
	"github.com/VivekWar/ABRC/utils"

	"gopkg.in/gomail.v2"
)

// Mailer delivers outbound notification mail. Delivery is best effort;
// callers never fail a request because a mail did not go out.
type Mailer interface {
	SendRideRequestMail(to, ownerName, requesterName, destination string, departure time.Time) error
	SendWelcomeMail(to, name string) error
}

type SMTPMailer struct {
	cfg *config.Config
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendRideRequestMail(to, ownerName, requesterName, destination string, departure time.Time) error {
	body := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2>Hi %s!</h2>
  <p><strong>%s</strong> wants to join your ride and share the fare with you.</p>
  <div style="background: #f7fafc; padding: 16px; border-left: 4px solid #667eea;">
    <p><strong>Destination:</strong> %s</p>
    <p><strong>Departure:</strong> %s</p>
    <p><strong>Requester:</strong> %s</p>
  </div>
  <p>Log in to your CNB Taxi Share account to get in touch.</p>
  <p><a href="%s">View Request</a></p>
</div>`,
		ownerName, requesterName, destination,
		utils.FormatDeparture(departure), requesterName, m.cfg.AppURL)
	return m.send(to, "New Ride Request - CNB Taxi Share", body)
}

func (m *SMTPMailer) SendWelcomeMail(to, name string) error {
	body := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2>Hi %s!</h2>
  <p>Welcome to CNB Taxi Share! Post your travel plans, find travel partners
  and split the fare with fellow students.</p>
  <p><a href="%s">Start Sharing Rides</a></p>
</div>`, name, m.cfg.AppURL)
	return m.send(to, "Welcome to CNB Taxi Share!", body)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.SMTPUser)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	port, err := strconv.Atoi(m.cfg.SMTPPort)
	if err != nil {
		port = 587
	}
	d := gomail.NewDialer(m.cfg.SMTPHost, port, m.cfg.SMTPUser, m.cfg.SMTPPass)
	return d.DialAndSend(msg)
}

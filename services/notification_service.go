package services

import (
	"fmt"
	"log"
	"time"

	"fudge-kettle/config"
	"fudge-kettle/events"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gopkg.in/gomail.v2"
)

type EmailSender interface {
	SendOrderConfirmation(event events.OrderCreated) error
}

type SMSSender interface {
	SendOrderAlert(event events.OrderCreated) error
}

// NotificationService reacts to OrderCreated events. Every send is
// best-effort and bounded by a timeout; nothing here can fail or stall the
// checkout that emitted the event.
type NotificationService struct {
	email      EmailSender
	sms        SMSSender
	production bool
	timeout    time.Duration
}

func NewNotificationService(email EmailSender, sms SMSSender, production bool) *NotificationService {
	return &NotificationService{
		email:      email,
		sms:        sms,
		production: production,
		timeout:    10 * time.Second,
	}
}

func (s *NotificationService) HandleOrderCreated(event events.OrderCreated) {
	if s.email != nil {
		if err := s.runWithTimeout(func() error { return s.email.SendOrderConfirmation(event) }); err != nil {
			log.Printf("Failed to send confirmation email for order %d: %v", event.OrderID, err)
		}
	} else {
		log.Printf("Email not configured, skipping confirmation for order %d", event.OrderID)
	}

	// SMS only fires in production deployments, and only when the customer
	// left a phone number.
	if !s.production {
		return
	}
	if event.Phone == "" {
		log.Printf("Order %d has no phone number, skipping SMS", event.OrderID)
		return
	}
	if s.sms == nil {
		log.Printf("SMS not configured, skipping alert for order %d", event.OrderID)
		return
	}
	if err := s.runWithTimeout(func() error { return s.sms.SendOrderAlert(event) }); err != nil {
		log.Printf("Failed to send SMS for order %d: %v", event.OrderID, err)
	}
}

// runWithTimeout bounds transports that do not take a context (gomail).
func (s *NotificationService) runWithTimeout(send func() error) error {
	done := make(chan error, 1)
	go func() { done <- send() }()

	select {
	case err := <-done:
		return err
	case <-time.After(s.timeout):
		return fmt.Errorf("timed out after %s", s.timeout)
	}
}

func formatPickup(event events.OrderCreated) string {
	if event.PickupDatetime == nil {
		return "as soon as it is ready"
	}
	return event.PickupDatetime.Format("2006-01-02 15:04")
}

// GomailSender delivers the confirmation email over SMTP.
type GomailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailSender returns nil when SMTP is not configured, which downgrades
// email to a logged skip.
func NewGomailSender(cfg *config.Config) *GomailSender {
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil
	}
	return &GomailSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}
}

func (s *GomailSender) SendOrderConfirmation(event events.OrderCreated) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", event.Email)
	m.SetHeader("Subject", fmt.Sprintf("Order #%d Received - The Fudge Kettle", event.OrderID))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .logo { font-size: 24px; font-weight: bold; color: #8b4513; text-align: center; }
        .order-box { background-color: #fdf6ee; padding: 20px; margin: 20px 0; border-radius: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">The Fudge Kettle</div>
        <h2 style="color: #333;">Order Confirmation</h2>
        <p>Hi %s,</p>
        <p>Thanks for your order! We&rsquo;ll see you on <strong>%s</strong>.</p>

        <div class="order-box">
            <p><strong>Order Number:</strong> #%d</p>
            <p><strong>Pickup:</strong> %s</p>
        </div>

        <div class="footer">
            <p>&ndash; The Fudge Kettle</p>
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>
	`, event.FirstName, formatPickup(event), event.OrderID, formatPickup(event))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// TwilioSender delivers the SMS alert.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSender(cfg *config.Config) *TwilioSender {
	if cfg.TwilioSID == "" || cfg.TwilioToken == "" || cfg.TwilioFrom == "" {
		return nil
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioSID,
		Password: cfg.TwilioToken,
	})
	return &TwilioSender{client: client, from: cfg.TwilioFrom}
}

func (s *TwilioSender) SendOrderAlert(event events.OrderCreated) error {
	body := fmt.Sprintf("Hi %s, your order #%d is confirmed for %s.",
		event.FirstName, event.OrderID, formatPickup(event))

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(event.Phone)
	params.SetFrom(s.from)
	params.SetBody(body)

	_, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}

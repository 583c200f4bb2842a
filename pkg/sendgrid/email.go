package sendgrid

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService sends the post-checkout order confirmation.
type EmailService interface {
	SendOrderConfirmation(ctx context.Context, toEmail, toName, orderID string, total float64) error
	GetSendGridClient() *sendgrid.Client
}

type emailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey string, fromEmail string, fromName string) EmailService {
	return &emailService{client: sendgrid.NewSendClient(apiKey), fromEmail: fromEmail, fromName: fromName}
}

// SendOrderConfirmation implements EmailService.
func (e *emailService) SendOrderConfirmation(ctx context.Context, toEmail, toName, orderID string, total float64) error {

	from := mail.NewEmail(e.fromName, e.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	subject := fmt.Sprintf("Order %s confirmed", orderID)
	plain := fmt.Sprintf("Thank you for your order %s. Total: $%.2f.", orderID, total)
	html := fmt.Sprintf("<p>Thank you for your order <strong>%s</strong>.</p><p>Total: $%.2f</p>", orderID, total)

	message := mail.NewSingleEmail(from, subject, to, plain, html)

	response, err := e.client.SendWithContext(ctx, message)

	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}

// GetSendGridClient provides access to the internal sendgrid.Client.
func (e *emailService) GetSendGridClient() *sendgrid.Client {
	return e.client
}

package mocks

import (
	"context"

	"github.com/sendgrid/sendgrid-go"
	"github.com/stretchr/testify/mock"
)

// EmailService is a testify mock of sendgrid.EmailService.
type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendOrderConfirmation(ctx context.Context, toEmail, toName, orderID string, total float64) error {
	args := m.Called(ctx, toEmail, toName, orderID, total)

	return args.Error(0)
}

func (m *EmailService) GetSendGridClient() *sendgrid.Client {
	return nil
}

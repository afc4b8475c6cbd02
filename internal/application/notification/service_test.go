package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendEmail(to, subject, body string) error {
	return m.Called(to, subject, body).Error(0)
}

type mockSMS struct{ mock.Mock }

func (m *mockSMS) SendSMS(ctx context.Context, to, message string) error {
	return m.Called(ctx, to, message).Error(0)
}

func emailReq(phone string) domain.SendEmailRequest {
	return domain.SendEmailRequest{
		Cart:          []domain.CartItem{{ID: 1, Name: "X", Price: 100, Quantity: 2}},
		Total:         200,
		CustomerPhone: phone,
	}
}

func TestSendOrderConfirmation_EmailAndSMS(t *testing.T) {
	mm, ms := &mockMailer{}, &mockSMS{}
	mm.On("SendEmail", "sales@example.com", mock.Anything, mock.MatchedBy(func(body string) bool {
		return len(body) > 0
	})).Return(nil)
	ms.On("SendSMS", mock.Anything, "+258841234567", mock.Anything).Return(nil)

	err := NewService(mm, ms, "sales@example.com").
		SendOrderConfirmation(context.Background(), emailReq("258841234567"))
	require.NoError(t, err)
	mm.AssertExpectations(t)
	ms.AssertExpectations(t)
}

func TestSendOrderConfirmation_NoPhoneSkipsSMS(t *testing.T) {
	mm, ms := &mockMailer{}, &mockSMS{}
	mm.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := NewService(mm, ms, "sales@example.com").
		SendOrderConfirmation(context.Background(), emailReq(""))
	require.NoError(t, err)
	ms.AssertNotCalled(t, "SendSMS", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendOrderConfirmation_MailerFailurePropagates(t *testing.T) {
	mm, ms := &mockMailer{}, &mockSMS{}
	mm.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	err := NewService(mm, ms, "sales@example.com").
		SendOrderConfirmation(context.Background(), emailReq("258841234567"))
	require.Error(t, err)
	ms.AssertNotCalled(t, "SendSMS", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendOrderConfirmation_SMSFailureIsSwallowed(t *testing.T) {
	mm, ms := &mockMailer{}, &mockSMS{}
	mm.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	ms.On("SendSMS", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("sns down"))

	err := NewService(mm, ms, "sales@example.com").
		SendOrderConfirmation(context.Background(), emailReq("258841234567"))
	assert.NoError(t, err)
}

func TestSendOrderConfirmation_NilSMSSender(t *testing.T) {
	mm := &mockMailer{}
	mm.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	err := NewService(mm, nil, "sales@example.com").
		SendOrderConfirmation(context.Background(), emailReq("258841234567"))
	assert.NoError(t, err)
}

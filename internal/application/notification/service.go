package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/domain"
)

type Service interface {
	SendOrderConfirmation(ctx context.Context, req domain.SendEmailRequest) error
}

type mailer interface {
	SendEmail(to, subject, body string) error
}

type smsSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

type service struct {
	mailer mailer
	sms    smsSender
	to     string
}

// NewService builds the notification service. sms may be nil when SNS is not
// configured; SMS confirmations are then skipped.
func NewService(m mailer, sms smsSender, to string) Service {
	return &service{mailer: m, sms: sms, to: to}
}

// SendOrderConfirmation emails the order summary and, when a customer phone
// is present, sends an SMS confirmation. The SMS is best-effort on top of a
// best-effort step: its failure is logged and does not fail the email result.
func (s *service) SendOrderConfirmation(ctx context.Context, req domain.SendEmailRequest) error {
	subject := fmt.Sprintf("Order confirmation: %.2f MZN", req.Total)
	if err := s.mailer.SendEmail(s.to, subject, buildBody(req)); err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}

	if s.sms != nil && req.CustomerPhone != "" {
		msg := fmt.Sprintf("Payment of %.2f MZN received. Thank you for your order.", req.Total)
		if err := s.sms.SendSMS(ctx, "+"+req.CustomerPhone, msg); err != nil {
			slog.Warn("order confirmation SMS not sent", "phone", req.CustomerPhone, "err", err)
		}
	}
	return nil
}

func buildBody(req domain.SendEmailRequest) string {
	var b strings.Builder
	b.WriteString("A new order has been paid.\r\n\r\nItems:\r\n")
	for _, item := range req.Cart {
		fmt.Fprintf(&b, "  %dx %s @ %.2f\r\n", item.Quantity, item.Name, item.Price)
	}
	fmt.Fprintf(&b, "\r\nTotal: %.2f MZN\r\n", req.Total)
	if req.CustomerPhone != "" {
		fmt.Fprintf(&b, "Customer phone: %s\r\n", req.CustomerPhone)
	}
	return b.String()
}

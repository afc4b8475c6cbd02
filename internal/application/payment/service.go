// Package payment implements the charge → record → notify sequence behind
// /api/payment. The gateway call is the only hard boundary: once the charge
// succeeds the customer is told the payment succeeded, whatever happens to
// the bookkeeping steps afterwards.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/domain"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/infrastructure/mpesa"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/pkg/reference"
)

type Service interface {
	Process(ctx context.Context, userID string, req domain.PaymentRequest) (*domain.PaymentResponse, error)
}

type gatewayClient interface {
	Charge(ctx context.Context, amount float64, phone, transactionRef, thirdPartyRef string) (*mpesa.ChargeResult, error)
}

type orderCreator interface {
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error)
}

type notifier interface {
	SendOrderEmail(ctx context.Context, req domain.SendEmailRequest) error
}

type service struct {
	gateway      gatewayClient
	orders       orderCreator
	notifier     notifier
	defaultPhone string
}

type ServiceDeps struct {
	Gateway      gatewayClient
	Orders       orderCreator
	Notifier     notifier
	DefaultPhone string
}

func NewService(deps ServiceDeps) Service {
	return &service{
		gateway:      deps.Gateway,
		orders:       deps.Orders,
		notifier:     deps.Notifier,
		defaultPhone: deps.DefaultPhone,
	}
}

// Process runs the payment saga. The total is charged as submitted; it is not
// re-derived from the cart. Order recording and notification are best-effort:
// their failures are logged and never surfaced to the caller.
func (s *service) Process(ctx context.Context, userID string, req domain.PaymentRequest) (*domain.PaymentResponse, error) {
	if req.Total <= 0 {
		return nil, fmt.Errorf("total must be greater than zero: %w", domain.ErrBadRequest)
	}

	phone := req.CustomerPhone
	if phone == "" {
		phone = s.defaultPhone
	}

	transactionRef := reference.NewTransactionRef()
	thirdPartyRef := reference.NewThirdPartyRef()

	started := time.Now()

	gatewayStart := time.Now()
	charge, err := s.gateway.Charge(ctx, req.Total, phone, transactionRef, thirdPartyRef)
	gatewayElapsed := time.Since(gatewayStart)
	if err != nil {
		return nil, err
	}

	resp := &domain.PaymentResponse{
		TransactionID:        charge.TransactionID,
		ConversationID:       charge.ConversationID,
		ResponseCode:         charge.ResponseCode,
		ResponseDesc:         charge.ResponseDesc,
		TransactionReference: transactionRef,
		ThirdPartyReference:  thirdPartyRef,
		Amount:               req.Total,
		Cart:                 req.Cart,
	}

	// The charge has happened; a dropped caller must not abort bookkeeping.
	tail := context.WithoutCancel(ctx)

	orderStart := time.Now()
	order, err := s.orders.CreateOrder(tail, domain.CreateOrderRequest{
		UserID:               userID,
		TransactionID:        charge.TransactionID,
		ConversationID:       charge.ConversationID,
		TransactionReference: transactionRef,
		ThirdPartyReference:  thirdPartyRef,
		Amount:               req.Total,
		Cart:                 req.Cart,
		CustomerPhone:        phone,
	})
	orderElapsed := time.Since(orderStart)
	if err != nil {
		slog.Warn("payment saga: order not recorded",
			"transaction_id", charge.TransactionID, "user_id", userID, "err", err)
	} else {
		resp.OrderID = order.OrderID
	}

	notifyStart := time.Now()
	if err := s.notifier.SendOrderEmail(tail, domain.SendEmailRequest{
		Cart:          req.Cart,
		Total:         req.Total,
		CustomerPhone: phone,
	}); err != nil {
		slog.Warn("payment saga: notification not sent",
			"transaction_id", charge.TransactionID, "err", err)
	}
	notifyElapsed := time.Since(notifyStart)

	resp.Performance = domain.StepTimings{
		Gateway:      roundSeconds(gatewayElapsed),
		Order:        roundSeconds(orderElapsed),
		Notification: roundSeconds(notifyElapsed),
		Total:        roundSeconds(time.Since(started)),
	}
	return resp, nil
}

// roundSeconds converts a duration to seconds rounded to three decimals.
func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*1000) / 1000
}

package order

import (
	"context"
	"log/slog"
	"time"

	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/domain"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/pkg/id"
)

type Service interface {
	Create(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	GetByID(ctx context.Context, orderID, userID string) (*domain.Order, error)
	GetByTransactionID(ctx context.Context, transactionID, userID string) (*domain.Order, error)
}

type orderStore interface {
	Put(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, orderID, userID string) (*domain.Order, error)
	GetByTransactionID(ctx context.Context, transactionID, userID string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

// ReceiptArchiver stores a durable copy of each recorded order.
type ReceiptArchiver interface {
	Archive(ctx context.Context, order *domain.Order) error
}

type service struct {
	repo     orderStore
	receipts ReceiptArchiver
}

// NewService builds the order service. receipts may be nil, in which case no
// receipts are archived.
func NewService(repo orderStore, receipts ReceiptArchiver) Service {
	return &service{repo: repo, receipts: receipts}
}

// Create assigns a time-ordered order id, persists the record, and archives a
// JSON receipt. Receipt archival is best-effort and never fails the create.
func (s *service) Create(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	now := time.Now().UTC()
	o := &domain.Order{
		OrderID:              id.NewOrderID(),
		UserID:               req.UserID,
		TransactionID:        req.TransactionID,
		ConversationID:       req.ConversationID,
		TransactionReference: req.TransactionReference,
		ThirdPartyReference:  req.ThirdPartyReference,
		Amount:               req.Amount,
		Cart:                 req.Cart,
		CustomerPhone:        req.CustomerPhone,
		Status:               domain.OrderStatusPaid,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.repo.Put(ctx, o); err != nil {
		return nil, err
	}
	if s.receipts != nil {
		if err := s.receipts.Archive(ctx, o); err != nil {
			slog.Warn("receipt not archived", "order_id", o.OrderID, "err", err)
		}
	}
	return o, nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) GetByID(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, orderID, userID)
}

func (s *service) GetByTransactionID(ctx context.Context, transactionID, userID string) (*domain.Order, error) {
	return s.repo.GetByTransactionID(ctx, transactionID, userID)
}

package order

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/domain"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/pkg/id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockOrderStore struct{ mock.Mock }

func (m *mockOrderStore) Put(ctx context.Context, o *domain.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *mockOrderStore) GetByID(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID, userID)
	if o, _ := args.Get(0).(*domain.Order); o != nil {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockOrderStore) GetByTransactionID(ctx context.Context, transactionID, userID string) (*domain.Order, error) {
	args := m.Called(ctx, transactionID, userID)
	if o, _ := args.Get(0).(*domain.Order); o != nil {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockOrderStore) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	if o, _ := args.Get(0).([]domain.Order); o != nil {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockArchiver struct{ mock.Mock }

func (m *mockArchiver) Archive(ctx context.Context, order *domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

// --- helpers ---

func createReq() domain.CreateOrderRequest {
	return domain.CreateOrderRequest{
		UserID:               "u1",
		TransactionID:        "MP1",
		ConversationID:       "conv-1",
		TransactionReference: "T1",
		ThirdPartyReference:  "abc123",
		Amount:               200,
		Cart:                 []domain.CartItem{{ID: 1, Name: "X", Price: 100, Quantity: 2}},
		CustomerPhone:        "258841234567",
	}
}

// --- tests ---

func TestCreate_AssignsIDAndStatus(t *testing.T) {
	repo, arc := &mockOrderStore{}, &mockArchiver{}
	repo.On("Put", mock.Anything, mock.Anything).Return(nil)
	arc.On("Archive", mock.Anything, mock.Anything).Return(nil)

	o, err := NewService(repo, arc).Create(context.Background(), createReq())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(o.OrderID, id.OrderPrefix))
	assert.Equal(t, domain.OrderStatusPaid, o.Status)
	assert.Equal(t, "u1", o.UserID)
	assert.Equal(t, "MP1", o.TransactionID)
	assert.False(t, o.CreatedAt.IsZero())
	repo.AssertExpectations(t)
	arc.AssertExpectations(t)
}

func TestCreate_StoreFailurePropagates(t *testing.T) {
	repo, arc := &mockOrderStore{}, &mockArchiver{}
	repo.On("Put", mock.Anything, mock.Anything).Return(errors.New("table unavailable"))

	_, err := NewService(repo, arc).Create(context.Background(), createReq())
	require.Error(t, err)
	arc.AssertNotCalled(t, "Archive", mock.Anything, mock.Anything)
}

func TestCreate_ArchiveFailureIsSwallowed(t *testing.T) {
	repo, arc := &mockOrderStore{}, &mockArchiver{}
	repo.On("Put", mock.Anything, mock.Anything).Return(nil)
	arc.On("Archive", mock.Anything, mock.Anything).Return(errors.New("bucket gone"))

	o, err := NewService(repo, arc).Create(context.Background(), createReq())
	require.NoError(t, err)
	assert.NotEmpty(t, o.OrderID)
}

func TestCreate_NilArchiverSkipsReceipt(t *testing.T) {
	repo := &mockOrderStore{}
	repo.On("Put", mock.Anything, mock.Anything).Return(nil)

	_, err := NewService(repo, nil).Create(context.Background(), createReq())
	require.NoError(t, err)
}

func TestGetByID_ScopesToCaller(t *testing.T) {
	repo := &mockOrderStore{}
	repo.On("GetByID", mock.Anything, "ORD-1", "u2").Return(nil, domain.ErrNotFound)

	_, err := NewService(repo, nil).GetByID(context.Background(), "ORD-1", "u2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

package domain

import "time"

// CartItem is one line of a customer's cart. Quantity is validated at the
// API boundary; the item id comes from the storefront catalog.
type CartItem struct {
	ID       int     `json:"id" dynamodbav:"id"`
	Name     string  `json:"name" dynamodbav:"name"`
	Price    float64 `json:"price" dynamodbav:"price"`
	Quantity int     `json:"quantity" dynamodbav:"quantity" validate:"min=1"`
}

// OrderStatusPaid is the only status currently modeled: an order is written
// only after the gateway confirmed the charge.
const OrderStatusPaid = "paid"

type Order struct {
	OrderID              string     `json:"orderId" dynamodbav:"order_id"`
	UserID               string     `json:"userId" dynamodbav:"user_id"`
	TransactionID        string     `json:"transactionId" dynamodbav:"transaction_id"`
	ConversationID       string     `json:"conversationId" dynamodbav:"conversation_id"`
	TransactionReference string     `json:"transactionReference" dynamodbav:"transaction_reference"`
	ThirdPartyReference  string     `json:"thirdPartyReference" dynamodbav:"third_party_reference"`
	Amount               float64    `json:"amount" dynamodbav:"amount"`
	Cart                 []CartItem `json:"cart" dynamodbav:"cart"`
	CustomerPhone        string     `json:"customerPhone,omitempty" dynamodbav:"customer_phone"`
	Status               string     `json:"status" dynamodbav:"status"`
	CreatedAt            time.Time  `json:"created" dynamodbav:"created_at"`
	UpdatedAt            time.Time  `json:"updated" dynamodbav:"updated_at"`
}

// CreateOrderRequest is the internal payload the orchestrator posts to the
// order service after a successful charge.
type CreateOrderRequest struct {
	UserID               string     `json:"userId" validate:"required"`
	TransactionID        string     `json:"transactionId" validate:"required"`
	ConversationID       string     `json:"conversationId"`
	TransactionReference string     `json:"transactionReference" validate:"required"`
	ThirdPartyReference  string     `json:"thirdPartyReference" validate:"required"`
	Amount               float64    `json:"amount" validate:"gt=0"`
	Cart                 []CartItem `json:"cart" validate:"required,min=1,dive"`
	CustomerPhone        string     `json:"customerPhone"`
}

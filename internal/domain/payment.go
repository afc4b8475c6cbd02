package domain

// PaymentRequest is what an authenticated customer submits to /api/payment.
// Total is the caller-computed cart sum; it is charged as-is and not
// re-derived from the cart here.
type PaymentRequest struct {
	Cart          []CartItem `json:"cart" validate:"required,min=1,dive"`
	Total         float64    `json:"total" validate:"required"`
	CustomerPhone string     `json:"customerPhone" validate:"omitempty,min=9"`
}

// StepTimings reports how long each saga step took, in seconds rounded to
// three decimals. Steps that were skipped report zero.
type StepTimings struct {
	Gateway      float64 `json:"gateway"`
	Order        float64 `json:"order"`
	Notification float64 `json:"notification"`
	Total        float64 `json:"total"`
}

// PaymentResponse is the successful orchestration result. OrderID is empty
// when the order service could not record the order; the charge still went
// through, so the request is reported as a success regardless.
type PaymentResponse struct {
	TransactionID        string      `json:"transactionId"`
	ConversationID       string      `json:"conversationId"`
	ResponseCode         string      `json:"responseCode"`
	ResponseDesc         string      `json:"responseDesc"`
	TransactionReference string      `json:"transactionReference"`
	ThirdPartyReference  string      `json:"thirdPartyReference"`
	Amount               float64     `json:"amount"`
	Cart                 []CartItem  `json:"cart"`
	OrderID              string      `json:"orderId,omitempty"`
	Performance          StepTimings `json:"performance"`
}

// SendEmailRequest is the internal payload posted to the notification service.
type SendEmailRequest struct {
	Cart          []CartItem `json:"cart" validate:"required,min=1,dive"`
	Total         float64    `json:"total" validate:"gt=0"`
	CustomerPhone string     `json:"customerPhone"`
}

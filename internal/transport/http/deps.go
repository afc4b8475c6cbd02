package http

import (
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/infrastructure/dynamo"
	jwtinfra "github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/infrastructure/jwt"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/infrastructure/mailservice"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/infrastructure/mpesa"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/infrastructure/orderservice"
	s3infra "github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/infrastructure/s3"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/infrastructure/smtp"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/infrastructure/sns"
)

// GatewayDeps holds the infrastructure the public API router needs.
type GatewayDeps struct {
	UserRepo    *dynamo.UserRepo
	JWTProvider *jwtinfra.Provider
	Gateway     *mpesa.Client
	OrderClient *orderservice.Client
	MailClient  *mailservice.Client
}

// OrderDeps holds the infrastructure the order service router needs.
// Receipts may be nil when no archive bucket is configured.
type OrderDeps struct {
	OrderRepo   *dynamo.OrderRepo
	Receipts    *s3infra.ReceiptStore
	JWTProvider *jwtinfra.Provider
}

// NotificationDeps holds the infrastructure the notification router needs.
// SMSSender may be nil when SNS is not configured.
type NotificationDeps struct {
	Mailer      smtp.Mailer
	SMSSender   sns.SMSSender
	JWTProvider *jwtinfra.Provider
}

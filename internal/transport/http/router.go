package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/application/auth"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/application/notification"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/application/order"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/application/payment"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/config"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/transport/http/handler"
	appmiddleware "github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

func baseRouter(cfg *config.Config) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "x-api-key"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	return r
}

// NewGatewayRouter builds the public API: account endpoints, the token
// lifecycle, and the payment saga.
func NewGatewayRouter(cfg *config.Config, deps *GatewayDeps) http.Handler {
	r := baseRouter(cfg)

	// 5 requests/second, burst of 10, applied to credential endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	authSvc := auth.NewService(deps.UserRepo, deps.JWTProvider)
	paySvc := payment.NewService(payment.ServiceDeps{
		Gateway:      deps.Gateway,
		Orders:       deps.OrderClient,
		Notifier:     deps.MailClient,
		DefaultPhone: cfg.DefaultTestPhone,
	})

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc)
	payH := handler.NewPaymentHandler(paySvc)

	r.Get("/health", healthH.Check)
	r.With(sensitiveRL.Limit).Post("/register", authH.Register)
	r.With(sensitiveRL.Limit).Post("/login", authH.Login)
	r.Post("/refresh-token", authH.Refresh)
	r.Post("/logout", authH.Logout)

	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.Auth(deps.JWTProvider))
		r.Post("/api/payment", payH.Pay)
	})

	return r
}

// NewOrderRouter builds the order service: internal create behind the
// service key, user-scoped reads behind bearer auth.
func NewOrderRouter(cfg *config.Config, deps *OrderDeps) http.Handler {
	r := baseRouter(cfg)

	var receipts order.ReceiptArchiver
	if deps.Receipts != nil {
		receipts = deps.Receipts
	}
	orderSvc := order.NewService(deps.OrderRepo, receipts)

	healthH := handler.NewHealthHandler()
	orderH := handler.NewOrderHandler(orderSvc)

	r.Get("/health", healthH.Check)
	r.With(appmiddleware.RequireServiceKey(deps.JWTProvider)).Post("/orders", orderH.Create)

	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.Auth(deps.JWTProvider))
		r.Get("/orders", orderH.List)
		r.Get("/orders/{orderID}", orderH.Get)
		r.Get("/orders/transaction/{transactionID}", orderH.GetByTransaction)
	})

	return r
}

// NewNotificationRouter builds the notification service: a single internal
// send-email endpoint behind the service key.
func NewNotificationRouter(cfg *config.Config, deps *NotificationDeps) http.Handler {
	r := baseRouter(cfg)

	notifSvc := notification.NewService(deps.Mailer, deps.SMSSender, cfg.OrderEmailTo)

	healthH := handler.NewHealthHandler()
	emailH := handler.NewEmailHandler(notifSvc)

	r.Get("/health", healthH.Check)
	r.With(appmiddleware.RequireServiceKey(deps.JWTProvider)).Post("/send-email", emailH.Send)

	return r
}

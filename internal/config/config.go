package config

import (
	"os"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
// All three services share one Config; each main reads only the fields it needs.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables
	ReceiptBucket  string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	// ServiceAPIKey authenticates service-to-service calls (x-api-key header).
	ServiceAPIKey string

	MpesaBaseURL      string
	MpesaAPIKey       string
	MpesaProviderCode string
	// DefaultTestPhone is charged when a payment request carries no customer phone.
	DefaultTestPhone string

	OrderServiceURL        string
	NotificationServiceURL string

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string
	// OrderEmailTo receives the order-confirmation emails (back office inbox).
	OrderEmailTo string

	SNSRegion      string
	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Users  string
	Orders string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "4000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Users:  getEnv("DYNAMO_TABLE_USERS", "users"),
			Orders: getEnv("DYNAMO_TABLE_ORDERS", "orders"),
		},
		ReceiptBucket: getEnv("S3_RECEIPT_BUCKET", "ecommerce-receipts"),

		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-me"),
		AccessTokenTTL:  getEnvDuration("ACCESS_TOKEN_TTL", time.Hour),
		RefreshTokenTTL: getEnvDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),

		ServiceAPIKey: getEnv("SERVICE_API_KEY", ""),

		MpesaBaseURL:      getEnv("MPESA_BASE_URL", "https://api.sandbox.vm.co.mz:18352"),
		MpesaAPIKey:       getEnv("MPESA_API_KEY", ""),
		MpesaProviderCode: getEnv("MPESA_PROVIDER_CODE", "171717"),
		DefaultTestPhone:  getEnv("MPESA_TEST_PHONE", "258843330333"),

		OrderServiceURL:        getEnv("ORDER_SERVICE_URL", "http://localhost:4001"),
		NotificationServiceURL: getEnv("NOTIFICATION_SERVICE_URL", "http://localhost:4002"),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPFrom:     getEnv("SMTP_FROM", "orders@example.com"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		OrderEmailTo: getEnv("ORDER_EMAIL_TO", "sales@example.com"),

		SNSRegion:      getEnv("SNS_REGION", "us-east-1"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

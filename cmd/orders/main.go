package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/config"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/infrastructure/dynamo"
	jwtinfra "github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/infrastructure/jwt"
	s3infra "github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/infrastructure/s3"
	transporthttp "github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	jwtProvider, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		log.Fatalf("JWT provider: %v", err)
	}

	// Receipt archive (optional, skipped when no bucket is configured).
	var receipts *s3infra.ReceiptStore
	if cfg.ReceiptBucket != "" {
		receipts = s3infra.NewReceiptStore(s3infra.NewClient(cfg), cfg.ReceiptBucket)
	}

	deps := &transporthttp.OrderDeps{
		OrderRepo:   dynamo.NewOrderRepo(dynamoClient, cfg.DynamoTables.Orders),
		Receipts:    receipts,
		JWTProvider: jwtProvider,
	}

	router := transporthttp.NewOrderRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("orders starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}

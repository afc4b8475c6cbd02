package jwtinfra

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/config"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/domain"
)

// Claims holds the JWT payload fields. Both token tiers carry the same claims;
// they differ only in lifetime.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Provider signs and verifies HS256 JWTs and checks the service-to-service
// key. One shared secret signs both access and refresh tokens; tokens are
// never persisted, so validity is purely signature plus expiry.
type Provider struct {
	secret     []byte
	serviceKey string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewProvider(cfg *config.Config) (*Provider, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret not configured")
	}
	return &Provider{
		secret:     []byte(cfg.JWTSecret),
		serviceKey: cfg.ServiceAPIKey,
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
	}, nil
}

// SignAccess issues a short-lived access token bound to the user.
func (p *Provider) SignAccess(userID, email string) (string, error) {
	return p.sign(userID, email, p.accessTTL)
}

// SignRefresh issues a long-lived refresh token bound to the user.
// It is minted only at login and never rotated.
func (p *Provider) SignRefresh(userID, email string) (string, error) {
	return p.sign(userID, email, p.refreshTTL)
}

func (p *Provider) sign(userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// Verify parses and validates a token. An expired-but-otherwise-valid token
// yields domain.ErrTokenExpired; every other failure yields
// domain.ErrTokenInvalid. Callers branch on the distinction because only
// Expired should trigger the client refresh flow.
func (p *Provider) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("verify token: %w", domain.ErrTokenExpired)
		}
		return nil, fmt.Errorf("verify token: %w", domain.ErrTokenInvalid)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("verify token claims: %w", domain.ErrTokenInvalid)
	}
	return claims, nil
}

// Refresh verifies a refresh token and mints a new access token from its
// claims. The refresh token itself is not re-issued or extended.
func (p *Provider) Refresh(refreshToken string) (string, error) {
	claims, err := p.Verify(refreshToken)
	if err != nil {
		return "", err
	}
	return p.SignAccess(claims.UserID, claims.Email)
}

// VerifyServiceKey compares a caller-supplied key against the configured
// service-to-service secret in constant time. An empty configured key
// rejects everything.
func (p *Provider) VerifyServiceKey(key string) bool {
	if p.serviceKey == "" || key == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(p.serviceKey)) == 1
}

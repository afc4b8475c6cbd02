package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/domain"
	"github.com/jeffenyinnah/ecommerce-platform-with-microservice-architecture/internal/pkg/id"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req domain.LoginRequest) (*domain.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
}

type tokenIssuer interface {
	SignAccess(userID, email string) (string, error)
	SignRefresh(userID, email string) (string, error)
	Refresh(refreshToken string) (string, error)
}

type service struct {
	repo   userStore
	tokens tokenIssuer
}

func NewService(repo userStore, tokens tokenIssuer) Service {
	return &service{repo: repo, tokens: tokens}
}

func (s *service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("email already registered: %w", domain.ErrConflict)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	u := &domain.User{
		UserID:       id.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Put(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*domain.TokenPair, error) {
	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}
	access, err := s.tokens.SignAccess(u.UserID, u.Email)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.SignRefresh(u.UserID, u.Email)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	return s.tokens.Refresh(refreshToken)
}

// Logout is stateless: tokens are never persisted server-side, so there is
// nothing to invalidate. The client discards its copies.
func (s *service) Logout(ctx context.Context, refreshToken string) error {
	return nil
}

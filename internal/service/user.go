package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lavkashop/lavka/internal/auth"
	"github.com/lavkashop/lavka/internal/domain"
	"github.com/lavkashop/lavka/internal/store"
	"github.com/lavkashop/lavka/internal/telemetry"
)

type userService struct {
	store store.Store
}

// NewUserService creates a UserService backed by the store.
func NewUserService(st store.Store) domain.UserService {
	return &userService{store: st}
}

// Register creates a user and issues a bearer token.
func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.Credentials, error) {
	const op = "user.Register"

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		return nil, domain.Invalid(op, "Email is required")
	}
	if req.Password == "" {
		return nil, domain.Invalid(op, "Password is required")
	}
	if req.Name == "" {
		return nil, domain.Invalid(op, "Name is required")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) {
			return nil, domain.Invalid(op, auth.ErrPasswordTooShort.Error())
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         req.Name,
		Phone:        req.Phone,
		CreatedAt:    time.Now().UTC(),
	}

	err = s.store.Transact(ctx, func(tx store.Store) error {
		_, err := tx.Users().FindByEmail(ctx, email)
		if err == nil {
			return domain.ErrEmailTaken
		}
		if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("failed to look up email: %w", err)
		}
		return tx.Users().Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	telemetry.Business.Signups.Inc()
	return s.issueToken(ctx, &user)
}

// Login verifies the password and issues a bearer token. A missing
// user and a wrong password produce the same error.
func (s *userService) Login(ctx context.Context, email, password string) (*domain.Credentials, error) {
	user, err := s.store.Users().FindByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			telemetry.Business.LoginsFailed.Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := auth.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			telemetry.Business.LoginsFailed.Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}

	telemetry.Business.Logins.Inc()
	return s.issueToken(ctx, user)
}

// CurrentUser resolves a bearer token to its user.
func (s *userService) CurrentUser(ctx context.Context, token string) (*domain.PublicUser, error) {
	if token == "" {
		return nil, domain.ErrInvalidToken
	}

	t, err := s.store.Tokens().Find(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}
	if time.Now().After(t.ExpiresAt) {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.store.Users().Get(ctx, t.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	pub := user.Public()
	return &pub, nil
}

func (s *userService) issueToken(ctx context.Context, user *domain.User) (*domain.Credentials, error) {
	token, err := auth.GenerateToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = s.store.Tokens().Create(ctx, domain.AuthToken{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: now.Add(auth.TokenTTL),
		CreatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	return &domain.Credentials{Token: token, User: user.Public()}, nil
}

// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/gstone/internal/platform/apperr"
	"github.com/taibuivan/gstone/internal/platform/sec"
	"github.com/taibuivan/gstone/internal/platform/validate"
	"github.com/taibuivan/gstone/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given account.
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

// Service implements back-office authentication use cases.
type Service struct {
	accounts AccountRepository
	sessions SessionRepository
	tokens   TokenProvider
	logger   *slog.Logger
	now      func() time.Time
}

func NewService(accounts AccountRepository, sessions SessionRepository, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		accounts: accounts,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
		now:      time.Now,
	}
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Login     string // Email or username
	Password  string
	UserAgent string
	IPAddress string
}

// LoginSession is the result of a successful login or refresh.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	Account               *Account
}

// # Authentication Flow

/*
Login verifies credentials and opens a refresh session.

Unknown accounts and wrong passwords produce the same error so callers cannot
probe which logins exist.

Returns:
  - *LoginSession: Access and refresh tokens
  - error: VALIDATION_ERROR, UNAUTHORIZED, or FORBIDDEN for a disabled account
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	input.Login = strings.TrimSpace(input.Login)

	validator := &validate.Validator{}
	validator.Required(FieldLogin, input.Login)
	validator.Required(FieldPassword, input.Password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	account, err := service.accounts.FindByLogin(context, input.Login)
	if err != nil {
		if appErr := apperr.As(err); appErr != nil && appErr.Code == "NOT_FOUND" {
			return nil, apperr.Unauthorized("Invalid login credentials")
		}
		return nil, err
	}

	if !sec.CheckPasswordHash(input.Password, account.PasswordHash) {
		service.logger.Warn("auth_login_failed", slog.String("user_id", account.ID), slog.String("ip", input.IPAddress))
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !account.IsActive {
		return nil, apperr.Forbidden("Account is disabled")
	}

	session, err := service.openSession(context, account, input.UserAgent, input.IPAddress)
	if err != nil {
		return nil, err
	}

	loginAt := service.now()
	if err := service.accounts.TouchLastLogin(context, account.ID, loginAt); err != nil {
		service.logger.Error("auth_touch_last_login_failed", slog.String("user_id", account.ID), slog.Any("error", err))
	} else {
		account.LastLoginAt = &loginAt
	}

	service.logger.Info("auth_login", slog.String("user_id", account.ID), slog.String("role", string(account.Role)))
	return session, nil
}

/*
Refresh redeems a refresh token for a new token pair.

The presented token is consumed whether or not the rest succeeds, so a stolen
token that has already been rotated is useless.
*/
func (service *Service) Refresh(context context.Context, refreshToken, userAgent, ipAddress string) (*LoginSession, error) {
	if refreshToken == "" {
		return nil, apperr.Unauthorized("Missing refresh token")
	}

	session, err := service.sessions.Consume(context, sec.HashToken(refreshToken))
	if err != nil {
		return nil, err
	}

	account, err := service.accounts.FindByID(context, session.UserID)
	if err != nil || !account.IsActive {
		return nil, apperr.Unauthorized("Account not found or disabled")
	}

	return service.openSession(context, account, userAgent, ipAddress)
}

// Logout deletes the refresh session. Unknown tokens are ignored.
func (service *Service) Logout(context context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if err := service.sessions.Delete(context, sec.HashToken(refreshToken)); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}
	return nil
}

// Me returns the account behind an access token.
func (service *Service) Me(context context.Context, userID string) (*Account, error) {
	account, err := service.accounts.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	if !account.IsActive {
		return nil, apperr.Forbidden("Account is disabled")
	}
	return account, nil
}

// openSession issues an access token and stores a fresh refresh session.
func (service *Service) openSession(context context.Context, account *Account, userAgent, ipAddress string) (*LoginSession, error) {
	accessToken, err := service.tokens.GenerateAccessToken(account.ID, account.Username, string(account.Role), AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_token_failed: %w", err)
	}

	now := service.now()
	session := &Session{
		UserID:    account.ID,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(RefreshTokenTTL),
	}

	if err := service.sessions.Create(context, sec.HashToken(refreshToken), session, RefreshTokenTTL); err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: session.ExpiresAt,
		Account:               account,
	}, nil
}

// # Bootstrap

// BootstrapInput describes the first administrator.
type BootstrapInput struct {
	Email    string
	Username string
	Password string
}

/*
EnsureAdmin creates an administrator when no account uses the given email.

It runs at startup so a fresh database can be managed without manual SQL.
Calling it again with the same email is a no-op.

Returns:
  - bool: true when an account was created
  - error: VALIDATION_ERROR, CONFLICT on a taken username, or storage failures
*/
func (service *Service) EnsureAdmin(context context.Context, input BootstrapInput) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	username := strings.TrimSpace(input.Username)

	validator := &validate.Validator{}
	validator.Required(FieldEmail, email).Email(FieldEmail, email)
	validator.Required(FieldUsername, username).MinLen(FieldUsername, username, 3)
	validator.MinLen(FieldPassword, input.Password, minPasswordLen)
	if err := validator.Err(); err != nil {
		return false, err
	}

	_, err := service.accounts.FindByLogin(context, email)
	if err == nil {
		return false, nil
	}
	if appErr := apperr.As(err); appErr == nil || appErr.Code != "NOT_FOUND" {
		return false, err
	}

	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return false, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	account := &Account{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         sec.RoleAdmin,
		IsActive:     true,
	}

	if err := service.accounts.Create(context, account); err != nil {
		return false, err
	}

	service.logger.Info("auth_admin_bootstrapped", slog.String("user_id", account.ID), slog.String("email", email))
	return true, nil
}

// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/gstone/internal/platform/apperr"
	"github.com/taibuivan/gstone/internal/platform/sec"
	"github.com/taibuivan/gstone/internal/platform/validate"
	"github.com/taibuivan/gstone/internal/users/auth"
	"github.com/taibuivan/gstone/pkg/pointer"
	"github.com/taibuivan/gstone/pkg/uuid"
)

// Service implements account administration.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) ListAccounts(context context.Context) ([]*auth.Account, error) {
	return service.repo.ListAccounts(context)
}

func (service *Service) GetAccount(context context.Context, id string) (*auth.Account, error) {
	if !uuid.Valid(id) {
		return nil, apperr.NotFound("Account")
	}
	return service.repo.FindByID(context, id)
}

/*
CreateAccount registers a back-office user with a hashed password.

Returns:
  - *auth.Account: Created entity
  - error: VALIDATION_ERROR, or CONFLICT for a taken email or username
*/
func (service *Service) CreateAccount(context context.Context, input CreateInput) (*auth.Account, error) {
	if input.Role == "" {
		input.Role = sec.RoleEditor
	}

	account := &auth.Account{
		ID:       uuid.New(),
		Username: strings.TrimSpace(input.Username),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Role:     input.Role,
		IsActive: pointer.Fallback(input.IsActive, true),
	}

	validator := &validate.Validator{}
	validateAccount(validator, account)
	validatePassword(validator, FieldPassword, input.Password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("account_service_hash_failed: %w", err)
	}
	account.PasswordHash = hash

	if err := service.repo.Create(context, account); err != nil {
		return nil, err
	}

	service.logger.Info("account_created",
		slog.String("user_id", account.ID),
		slog.String("role", string(account.Role)),
	)
	return account, nil
}

/*
UpdateAccount edits another account on behalf of actorID.

An administrator cannot demote or disable themselves, which keeps at least the
acting administrator able to sign in.
*/
func (service *Service) UpdateAccount(context context.Context, actorID, id string, input UpdateInput) (*auth.Account, error) {
	account, err := service.GetAccount(context, id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		account.Username = strings.TrimSpace(*input.Username)
	}
	if input.Email != nil {
		account.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Role != nil {
		account.Role = *input.Role
	}
	if input.IsActive != nil {
		account.IsActive = *input.IsActive
	}

	validator := &validate.Validator{}
	validateAccount(validator, account)
	if input.Password != nil {
		validatePassword(validator, FieldPassword, *input.Password)
	}
	if id == actorID {
		validator.Custom(FieldRole, account.Role != sec.RoleAdmin, "You cannot change your own role")
		validator.Custom(FieldIsActive, !account.IsActive, "You cannot disable your own account")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateAccount(context, account); err != nil {
		return nil, err
	}

	if input.Password != nil {
		hash, err := sec.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("account_service_hash_failed: %w", err)
		}
		if err := service.repo.UpdatePassword(context, id, hash); err != nil {
			return nil, err
		}
		account.PasswordHash = hash
	}

	service.logger.Info("account_updated", slog.String("user_id", id), slog.String("actor_id", actorID))
	return account, nil
}

func (service *Service) DeleteAccount(context context.Context, actorID, id string) error {
	if id == actorID {
		return apperr.Forbidden("You cannot delete your own account")
	}
	if !uuid.Valid(id) {
		return apperr.NotFound("Account")
	}

	if err := service.repo.DeleteAccount(context, id); err != nil {
		return err
	}

	service.logger.Warn("account_deleted", slog.String("user_id", id), slog.String("actor_id", actorID))
	return nil
}

// ChangePassword replaces the caller's password after checking the current one.
func (service *Service) ChangePassword(context context.Context, userID string, input ChangePasswordInput) error {
	validator := &validate.Validator{}
	validator.Required(FieldCurrentPassword, input.CurrentPassword)
	validatePassword(validator, FieldNewPassword, input.NewPassword)
	if err := validator.Err(); err != nil {
		return err
	}

	account, err := service.repo.FindByID(context, userID)
	if err != nil {
		return err
	}

	if !sec.CheckPasswordHash(input.CurrentPassword, account.PasswordHash) {
		return apperr.Unauthorized("Current password is incorrect")
	}

	hash, err := sec.HashPassword(input.NewPassword)
	if err != nil {
		return fmt.Errorf("account_service_hash_failed: %w", err)
	}

	if err := service.repo.UpdatePassword(context, userID, hash); err != nil {
		return err
	}

	service.logger.Info("account_password_changed", slog.String("user_id", userID))
	return nil
}

// # Validation

func validateAccount(validator *validate.Validator, account *auth.Account) {
	validator.Required(FieldUsername, account.Username).
		MinLen(FieldUsername, account.Username, minUsernameLen).
		MaxLen(FieldUsername, account.Username, maxUsernameLen)

	validator.Required(FieldEmail, account.Email)
	if account.Email != "" {
		validator.MaxLen(FieldEmail, account.Email, maxEmailLen).Email(FieldEmail, account.Email)
	}

	validator.Custom(FieldRole, !account.Role.Valid(), "Must be one of: admin, editor")
}

func validatePassword(validator *validate.Validator, field, password string) {
	validator.MinLen(field, password, minPasswordLen)
	validator.Custom(field, len(password) > maxPasswordBytes, "Password is too long")
}

// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account lets administrators manage back-office accounts and lets every
signed-in user change their own password.

Accounts are the same [auth.Account] records used for sign-in.
*/
package account

import (
	"context"

	"github.com/taibuivan/gstone/internal/platform/sec"
	"github.com/taibuivan/gstone/internal/users/auth"
)

// # Repository Contracts

// Repository is implemented by [auth.PostgresAccountRepository].
type Repository interface {
	ListAccounts(context context.Context) ([]*auth.Account, error)
	FindByID(context context.Context, id string) (*auth.Account, error)
	Create(context context.Context, account *auth.Account) error
	UpdateAccount(context context.Context, account *auth.Account) error
	UpdatePassword(context context.Context, id, passwordHash string) error
	DeleteAccount(context context.Context, id string) error
}

// # Inputs

// CreateInput is the payload for POST /accounts. Role defaults to editor.
type CreateInput struct {
	Username string       `json:"username"`
	Email    string       `json:"email"`
	Password string       `json:"password"`
	Role     sec.UserRole `json:"role"`
	IsActive *bool        `json:"isActive"`
}

// UpdateInput is the partial payload for PATCH /accounts/{id}.
// A non-empty Password resets the account's password.
type UpdateInput struct {
	Username *string       `json:"username"`
	Email    *string       `json:"email"`
	Role     *sec.UserRole `json:"role"`
	IsActive *bool         `json:"isActive"`
	Password *string       `json:"password"`
}

// ChangePasswordInput is the payload for PUT /accounts/me/password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Global field names for validation
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldRole            = "role"
	FieldIsActive        = "isActive"
	FieldCurrentPassword = "currentPassword"
	FieldNewPassword     = "newPassword"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	maxEmailLen    = 255
	minPasswordLen = 8
	maxPasswordBytes = 72 // bcrypt input limit
)

// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth authenticates back-office accounts.

Editors and administrators sign in with their email or username and receive a
short-lived RS256 access token plus a rotating refresh token. Refresh sessions
live in Redis; accounts live in PostgreSQL.
*/
package auth

import (
	"time"

	"github.com/taibuivan/gstone/internal/platform/sec"
)

// # Domain Entities

// Account is a back-office user.
type Account struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Role         sec.UserRole `json:"role"`
	IsActive     bool         `json:"isActive"`
	LastLoginAt  *time.Time   `json:"lastLoginAt"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Session is the server-side state behind a refresh token.
// It is keyed by the SHA-256 of the token, never by the token itself.
type Session struct {
	UserID    string    `json:"userId"`
	UserAgent string    `json:"userAgent"`
	IPAddress string    `json:"ipAddress"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// # Field Identifiers

const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldLogin    = "login"
)

// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"
)

// # Account Data Access

// AccountRepository defines the data access contract for back-office accounts.
type AccountRepository interface {
	FindByID(context context.Context, id string) (*Account, error)

	/*
		FindByLogin returns the account whose email or username equals login.
		Emails compare case-insensitively.

		Returns:
		  - *Account: Hydrated entity
		  - error: NOT_FOUND when no account matches
	*/
	FindByLogin(context context.Context, login string) (*Account, error)

	Create(context context.Context, account *Account) error

	// TouchLastLogin records a successful sign-in.
	TouchLastLogin(context context.Context, id string, at time.Time) error
}

// # Session Data Access

// SessionRepository stores refresh sessions keyed by token hash.
type SessionRepository interface {
	Create(context context.Context, tokenHash string, session *Session, ttl time.Duration) error

	/*
		Consume atomically reads and deletes the session for tokenHash, so a
		refresh token can be redeemed at most once.

		Returns:
		  - *Session: The redeemed session
		  - error: UNAUTHORIZED when the token is unknown or expired
	*/
	Consume(context context.Context, tokenHash string) (*Session, error)

	Delete(context context.Context, tokenHash string) error
}

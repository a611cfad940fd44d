// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/gstone/internal/platform/apperr"
)

// PostgreSQL SQLSTATE codes mapped to client errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// # Mapping
//
//   - pgx.ErrNoRows -> 404 NOT_FOUND
//   - 23505 unique_violation -> 409 CONFLICT (duplicate slug, duplicate email)
//   - 23503 foreign_key_violation -> 422 UNPROCESSABLE
//   - 23514 check_violation -> 422 UNPROCESSABLE
//   - anything else -> 500 INTERNAL_ERROR
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Already classified further down the stack
	if apperr.IsAppError(err) {
		return err
	}

	// 2. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 3. Constraint violations carry a SQLSTATE
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			conflict := apperr.Conflict(uniqueMessage(pgErr.ConstraintName))
			conflict.Cause = err
			return conflict
		case codeForeignKeyViolation:
			unprocessable := apperr.Unprocessable("Referenced resource does not exist or is still in use")
			unprocessable.Cause = err
			return unprocessable
		case codeCheckViolation:
			unprocessable := apperr.Unprocessable("Value violates a data constraint")
			unprocessable.Cause = err
			return unprocessable
		}
	}

	// 4. Unknown query errors become Internal Server Errors
	slog.Debug("db_error_unclassified", slog.String("action", action), slog.Any("error", err))
	return apperr.Internal(err)
}

// WrapEntity behaves like [Wrap] but names the missing entity in 404 responses
// ("Category not found" instead of "Resource not found").
func WrapEntity(err error, entity, action string) error {
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, ErrNotFound) {
		return apperr.NotFound(entity)
	}
	return Wrap(err, action)
}

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint failure.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// uniqueMessage renders a client-safe message for a unique constraint name.
//
// Constraints are named "<table>_<column>_key" by PostgreSQL, so slug and email
// collisions get a precise message.
func uniqueMessage(constraint string) string {
	switch {
	case strings.HasSuffix(constraint, "_slug_key"):
		return "An entry with this slug already exists"
	case strings.HasSuffix(constraint, "_email_key"):
		return "Email is already registered"
	case strings.HasSuffix(constraint, "_username_key"):
		return "Username is already taken"
	default:
		return "Resource already exists"
	}
}

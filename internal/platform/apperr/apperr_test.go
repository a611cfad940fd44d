// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/gstone/internal/platform/apperr"
)

/*
TestConstructors verifies the HTTP status and code of each error kind.
*/
func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *apperr.AppError
		wantStatus int
		wantCode   string
	}{
		{"not found", apperr.NotFound("Product"), http.StatusNotFound, "NOT_FOUND"},
		{"unauthorized", apperr.Unauthorized("x"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", apperr.Forbidden("x"), http.StatusForbidden, "FORBIDDEN"},
		{"conflict", apperr.Conflict("x"), http.StatusConflict, "CONFLICT"},
		{"validation", apperr.ValidationError("x"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unprocessable", apperr.Unprocessable("x"), http.StatusUnprocessableEntity, "UNPROCESSABLE"},
		{"too large", apperr.PayloadTooLarge("x"), http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE"},
		{"unsupported media", apperr.UnsupportedMediaType("x"), http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE"},
		{"internal", apperr.Internal(errors.New("boom")), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", apperr.NotFound("Slider"))

	assert.True(t, apperr.IsAppError(wrapped))
	assert.Equal(t, "Slider not found", apperr.As(wrapped).Message)
	assert.Nil(t, apperr.As(errors.New("plain")))
}

func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("pq: relation does not exist")
	err := apperr.Internal(cause)

	assert.NotContains(t, err.Error(), "relation")
	assert.ErrorIs(t, err, cause)
}

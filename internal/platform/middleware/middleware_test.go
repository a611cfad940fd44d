// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/gstone/internal/platform/ctxutil"
	"github.com/taibuivan/gstone/internal/platform/middleware"
	"github.com/taibuivan/gstone/internal/platform/sec"
)

type stubVerifier struct {
	claims *sec.AuthClaims
}

func (v stubVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return v.claims, nil
}

type stubConfig struct {
	dev     bool
	origins []string
}

func (c stubConfig) IsDevelopment() bool { return c.dev }
func (c stubConfig) Origins() []string   { return c.origins }

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

/*
TestAuthenticateAndRequireRole covers anonymous, invalid and role-gated access.
*/
func TestAuthenticateAndRequireRole(t *testing.T) {
	verifier := stubVerifier{claims: &sec.AuthClaims{UserID: "u1", Role: string(sec.RoleEditor)}}

	tests := []struct {
		name       string
		header     string
		required   sec.UserRole
		wantStatus int
	}{
		{"anonymous", "", sec.RoleEditor, http.StatusUnauthorized},
		{"malformed header", "Token good", sec.RoleEditor, http.StatusUnauthorized},
		{"invalid token", "Bearer bad", sec.RoleEditor, http.StatusUnauthorized},
		{"editor allowed", "Bearer good", sec.RoleEditor, http.StatusOK},
		{"editor cannot act as admin", "Bearer good", sec.RoleAdmin, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.Authenticate(verifier)(middleware.RequireRole(tt.required)(okHandler))

			r := httptest.NewRequest(http.MethodPost, "/api/v1/categories", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAuthenticate_InjectsClaims(t *testing.T) {
	claims := &sec.AuthClaims{UserID: "u1", Role: string(sec.RoleAdmin)}
	var seen *sec.AuthClaims

	handler := middleware.Authenticate(stubVerifier{claims: claims})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxutil.GetAuthUser(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer good")
	handler.ServeHTTP(httptest.NewRecorder(), r)

	assert.Same(t, claims, seen)
}

/*
TestCORS verifies the origin allow-list and preflight handling.
*/
func TestCORS(t *testing.T) {
	cfg := stubConfig{origins: []string{"https://gstone.az", "https://admin.gstone.az/"}}
	handler := middleware.CORS(cfg)(okHandler)

	tests := []struct {
		name        string
		method      string
		origin      string
		wantAllowed bool
		wantStatus  int
	}{
		{"allowed origin", http.MethodGet, "https://gstone.az", true, http.StatusOK},
		{"trailing slash in config", http.MethodGet, "https://admin.gstone.az", true, http.StatusOK},
		{"foreign origin", http.MethodGet, "https://evil.example", false, http.StatusOK},
		{"preflight", http.MethodOptions, "https://gstone.az", true, http.StatusNoContent},
		{"no origin", http.MethodGet, "", false, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(tt.method, "/", nil)
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantAllowed {
				assert.Equal(t, tt.origin, w.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestCORS_DevelopmentAllowsAnyOrigin(t *testing.T) {
	handler := middleware.CORS(stubConfig{dev: true})(okHandler)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

/*
TestRateLimitWith rejects requests above the burst for one IP only.
*/
func TestRateLimitWith(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimitWith(ctx, 0.001, 1)(okHandler)

	send := func(ip string) int {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Real-IP", ip)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxutil.GetRequestID(r.Context())
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get("X-Request-ID"))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Request-ID", "abc")
	handler.ServeHTTP(httptest.NewRecorder(), r)
	assert.Equal(t, "abc", seen)
}

func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

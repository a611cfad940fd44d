// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gstone/internal/platform/constants"
	"github.com/taibuivan/gstone/internal/platform/ctxutil"
	"github.com/taibuivan/gstone/internal/platform/sec"
	"github.com/taibuivan/gstone/internal/users/auth"
)

func newRouter(t *testing.T) (http.Handler, fixture) {
	t.Helper()
	f := newFixture(t)

	router := chi.NewRouter()
	router.Route("/auth", auth.NewHandler(f.service, true).RegisterRoutes)
	return router, f
}

func findCookie(response *http.Response) *http.Cookie {
	for _, cookie := range response.Cookies() {
		if cookie.Name == constants.RefreshTokenCookieName {
			return cookie
		}
	}
	return nil
}

func TestHandler_LoginRefreshLogout(t *testing.T) {
	router, _ := newRouter(t)

	recorder := httptest.NewRecorder()
	body := strings.NewReader(`{"login":"redaktor","password":"parol-12345"}`)
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/auth/login", body))
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "access.acc-editor.editor", envelope.Data["access_token"])
	assert.Equal(t, "Bearer", envelope.Data["token_type"])
	assert.Equal(t, float64(900), envelope.Data["expires_in"])

	user := envelope.Data["user"].(map[string]any)
	assert.Equal(t, "redaktor", user["username"])
	assert.NotContains(t, user, "passwordHash")

	cookie := findCookie(recorder.Result())
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, constants.RefreshTokenCookiePath, cookie.Path)

	// Rotate
	recorder = httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	request.AddCookie(cookie)
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	rotated := findCookie(recorder.Result())
	require.NotNil(t, rotated)
	assert.NotEqual(t, cookie.Value, rotated.Value)

	// Replaying the old cookie fails and clears it
	recorder = httptest.NewRecorder()
	request = httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	request.AddCookie(cookie)
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	cleared := findCookie(recorder.Result())
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)

	// Logout
	recorder = httptest.NewRecorder()
	request = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	request.AddCookie(rotated)
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestHandler_Login_Rejects(t *testing.T) {
	router, _ := newRouter(t)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"bad credentials", `{"login":"redaktor","password":"nope-nope"}`, http.StatusUnauthorized},
		{"missing fields", `{}`, http.StatusBadRequest},
		{"unknown field", `{"login":"redaktor","password":"parol-12345","remember":true}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body)))
			assert.Equal(t, tt.status, recorder.Code)
			assert.Nil(t, findCookie(recorder.Result()))
		})
	}
}

func TestHandler_Me(t *testing.T) {
	router, _ := newRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	request := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	claims := &sec.AuthClaims{UserID: "acc-editor", Username: "redaktor", Role: string(sec.RoleEditor)}
	request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var envelope struct {
		Data auth.Account `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "editor@gstone.az", envelope.Data.Email)
	assert.Equal(t, sec.RoleEditor, envelope.Data.Role)
}

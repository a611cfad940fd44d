// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gstone/internal/platform/ctxutil"
	"github.com/taibuivan/gstone/internal/platform/sec"
	"github.com/taibuivan/gstone/internal/users/account"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	service, _ := newService(t)

	router := chi.NewRouter()
	router.Route("/accounts", account.NewHandler(service).RegisterRoutes)
	return router
}

func as(request *http.Request, userID string, role sec.UserRole) *http.Request {
	claims := &sec.AuthClaims{UserID: userID, Username: "u", Role: string(role)}
	return request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
}

func TestHandler_ListAccounts(t *testing.T) {
	router := newRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, as(httptest.NewRequest(http.MethodGet, "/accounts", nil), editorID, sec.RoleEditor))
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, as(httptest.NewRequest(http.MethodGet, "/accounts", nil), adminID, sec.RoleAdmin))
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, "admin", envelope.Data[0]["username"])
	assert.NotContains(t, envelope.Data[0], "passwordHash")
}

func TestHandler_CreateAccount(t *testing.T) {
	router := newRouter(t)

	recorder := httptest.NewRecorder()
	body := strings.NewReader(`{"username":"operator","email":"op@gstone.az","password":"operator-1"}`)
	router.ServeHTTP(recorder, as(httptest.NewRequest(http.MethodPost, "/accounts", body), adminID, sec.RoleAdmin))
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "editor", envelope.Data["role"])
}

func TestHandler_ChangePassword(t *testing.T) {
	router := newRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPut, "/accounts/me/password", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = httptest.NewRecorder()
	body := strings.NewReader(`{"currentPassword":"kohne-parol","newPassword":"teze-parol-9"}`)
	router.ServeHTTP(recorder, as(httptest.NewRequest(http.MethodPut, "/accounts/me/password", body), editorID, sec.RoleEditor))
	assert.Equal(t, http.StatusNoContent, recorder.Code, recorder.Body.String())
}

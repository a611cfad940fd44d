// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gstone/internal/core/contact"
	"github.com/taibuivan/gstone/internal/platform/ctxutil"
	"github.com/taibuivan/gstone/internal/platform/sec"
)

func newRouter(t *testing.T) (http.Handler, *contact.Service, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	service := newService(t, notifier)

	router := chi.NewRouter()
	router.Route("/contacts", contact.NewHandler(service).RegisterRoutes)
	return router, service, notifier
}

func asRole(request *http.Request, role sec.UserRole) *http.Request {
	claims := &sec.AuthClaims{UserID: "u-1", Username: "editor", Role: string(role)}
	return request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
}

func TestHandler_SubmitContact(t *testing.T) {
	router, _, notifier := newRouter(t)

	t.Run("anonymous submission", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		body := strings.NewReader(`{"name":"Fərid","email":"farid@example.az","message":"Əməkdaşlıq təklifi"}`)
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/contacts", body))
		require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

		var envelope struct {
			Data map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.Equal(t, "Fərid", envelope.Data["name"])
		assert.Nil(t, envelope.Data["phone"])
		assert.Equal(t, false, envelope.Data["isRead"])
		assert.Len(t, notifier.sent, 1)
	})

	t.Run("invalid email", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		body := strings.NewReader(`{"name":"Fərid","email":"farid","message":"x"}`)
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/contacts", body))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandler_BackOffice(t *testing.T) {
	router, service, _ := newRouter(t)
	ctx := context.Background()

	for _, name := range []string{"Aysel", "Rəşad", "Nigar"} {
		_, err := service.Submit(ctx, message(name))
		require.NoError(t, err)
	}

	t.Run("anonymous list is rejected", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/contacts", nil))
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("paginated list", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, asRole(httptest.NewRequest(http.MethodGet, "/contacts?page=2&limit=2", nil), sec.RoleEditor))
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

		var envelope struct {
			Data []contact.Contact `json:"data"`
			Meta struct {
				Page       int `json:"page"`
				Total      int `json:"total"`
				TotalPages int `json:"total_pages"`
			} `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		require.Len(t, envelope.Data, 1)
		assert.Equal(t, "Aysel", envelope.Data[0].Name)
		assert.Equal(t, 2, envelope.Meta.Page)
		assert.Equal(t, 3, envelope.Meta.Total)
		assert.Equal(t, 2, envelope.Meta.TotalPages)
	})

	t.Run("page past the end keeps the total", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, asRole(httptest.NewRequest(http.MethodGet, "/contacts?page=9&limit=2", nil), sec.RoleEditor))
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

		var envelope struct {
			Data []contact.Contact `json:"data"`
			Meta struct {
				Total      int `json:"total"`
				TotalPages int `json:"total_pages"`
			} `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.Empty(t, envelope.Data)
		assert.Equal(t, 3, envelope.Meta.Total)
		assert.Equal(t, 2, envelope.Meta.TotalPages)
	})

	t.Run("mark read", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, asRole(httptest.NewRequest(http.MethodPatch, "/contacts/1/read", nil), sec.RoleEditor))
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

		var envelope struct {
			Data contact.Contact `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.True(t, envelope.Data.IsRead)
	})

	t.Run("delete requires admin", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, asRole(httptest.NewRequest(http.MethodDelete, "/contacts/1", nil), sec.RoleEditor))
		assert.Equal(t, http.StatusForbidden, recorder.Code)

		recorder = httptest.NewRecorder()
		router.ServeHTTP(recorder, asRole(httptest.NewRequest(http.MethodDelete, "/contacts/1", nil), sec.RoleAdmin))
		assert.Equal(t, http.StatusOK, recorder.Code)

		recorder = httptest.NewRecorder()
		router.ServeHTTP(recorder, asRole(httptest.NewRequest(http.MethodGet, "/contacts/1", nil), sec.RoleAdmin))
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

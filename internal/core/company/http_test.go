// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package company_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gstone/internal/core/company"
	"github.com/taibuivan/gstone/internal/platform/ctxutil"
	"github.com/taibuivan/gstone/internal/platform/sec"
	"github.com/taibuivan/gstone/pkg/i18n"
	"github.com/taibuivan/gstone/pkg/pointer"
)

const baseURL = "https://cdn.example.az"

func newRouter(t *testing.T) (http.Handler, *company.Service) {
	t.Helper()
	service, _ := newService(t)

	router := chi.NewRouter()
	router.Route("/companies", company.NewHandler(service, baseURL).RegisterRoutes)
	return router, service
}

func asRole(request *http.Request, role sec.UserRole) *http.Request {
	claims := &sec.AuthClaims{UserID: "u-1", Username: "editor", Role: string(role)}
	return request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
}

func decodeData(t *testing.T, body []byte, target any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, target))
}

func TestHandler_GetCompany(t *testing.T) {
	router, service := newRouter(t)

	created, err := service.CreateCompany(context.Background(), company.CreateInput{
		Title:       i18n.Text{i18n.LangAZ: "Sumqayıt Kimya", i18n.LangEN: "Sumgait Chemicals"},
		Logo:        pointer.To("/uploads/images/sk.png"),
		CategoryIDs: []int64{2},
	})
	require.NoError(t, err)

	t.Run("public view", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/companies/by-slug/sumqayit-kimya?lang=en", nil)

		router.ServeHTTP(recorder, request)
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

		var view map[string]any
		decodeData(t, recorder.Body.Bytes(), &view)
		assert.Equal(t, float64(created.ID), view["id"])
		assert.Equal(t, "Sumgait Chemicals", view["title"])
		assert.Nil(t, view["description"])
		assert.Equal(t, baseURL+"/uploads/images/sk.png", view["logo"])
		assert.Equal(t, []any{map[string]any{"id": float64(2), "title": "Food"}}, view["categories"])
	})

	t.Run("admin view", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/companies/1?allLanguages=1", nil)

		router.ServeHTTP(recorder, request)
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

		var view map[string]any
		decodeData(t, recorder.Body.Bytes(), &view)
		assert.Equal(t, map[string]any{"az": "Sumqayıt Kimya", "en": "Sumgait Chemicals"}, view["title"])
	})

	t.Run("unknown id", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/companies/77", nil))
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Company not found")
	})
}

func TestHandler_UploadLogo(t *testing.T) {
	router, service := newRouter(t)

	_, err := service.CreateCompany(context.Background(), company.CreateInput{Title: i18n.Text{i18n.LangAZ: "Loqolu"}})
	require.NoError(t, err)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", "brand.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	t.Run("anonymous", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/companies/1/logo", bytes.NewReader(body.Bytes()))
		request.Header.Set("Content-Type", form.FormDataContentType())
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("editor", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/companies/1/logo", bytes.NewReader(body.Bytes()))
		request.Header.Set("Content-Type", form.FormDataContentType())
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, asRole(request, sec.RoleEditor))
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

		var view company.LogoView
		decodeData(t, recorder.Body.Bytes(), &view)
		require.NotNil(t, view.Logo)
		assert.Equal(t, baseURL+"/uploads/images/brand.png", *view.Logo)
	})

	t.Run("missing file part", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/companies/1/logo", strings.NewReader("plain"))
		request.Header.Set("Content-Type", "text/plain")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, asRole(request, sec.RoleEditor))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandler_CreateRejectsUnknownFields(t *testing.T) {
	router, _ := newRouter(t)

	request := httptest.NewRequest(http.MethodPost, "/companies",
		strings.NewReader(`{"title":{"az":"Firma"},"website":"x"}`))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, asRole(request, sec.RoleAdmin))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

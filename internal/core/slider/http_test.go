// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slider_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gstone/internal/core/slider"
	"github.com/taibuivan/gstone/pkg/i18n"
	"github.com/taibuivan/gstone/pkg/pointer"
)

func TestHandler_ListSliders(t *testing.T) {
	service := newService(t)
	router := chi.NewRouter()
	router.Route("/sliders", slider.NewHandler(service, "https://cdn.example.az").RegisterRoutes)

	ctx := context.Background()
	_, err := service.CreateSlider(ctx, slider.CreateInput{
		Title:    i18n.Text{i18n.LangAZ: "Xoş gəlmisiniz", i18n.LangEN: "Welcome"},
		ImageURL: "/uploads/images/hero.jpg",
	})
	require.NoError(t, err)
	_, err = service.CreateSlider(ctx, slider.CreateInput{
		Title:    i18n.Text{i18n.LangAZ: "Gizli"},
		ImageURL: "https://img.example.az/hidden.jpg",
		IsActive: pointer.To(false),
	})
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/sliders?isActive=true", nil)
	request.Header.Set("Accept-Language", "en-GB")
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var envelope struct {
		Data []slider.PublicView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)

	view := envelope.Data[0]
	assert.Equal(t, "Welcome", view.Title)
	require.NotNil(t, view.Subtitle)
	assert.Empty(t, *view.Subtitle)
	require.NotNil(t, view.ImageURL)
	assert.Equal(t, "https://cdn.example.az/uploads/images/hero.jpg", *view.ImageURL)
}

func TestHandler_CreateSlider_RequiresAuth(t *testing.T) {
	router := chi.NewRouter()
	router.Route("/sliders", slider.NewHandler(newService(t), "").RegisterRoutes)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/sliders", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

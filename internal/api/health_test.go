// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gstone/internal/api"
)

type readinessBody struct {
	Data struct {
		Status string `json:"status"`
		Checks []struct {
			Name  string `json:"name"`
			OK    bool   `json:"ok"`
			Error string `json:"error"`
		} `json:"checks"`
	} `json:"data"`
}

func TestHealthHandlers(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		database   error
		cache      error
		wantStatus int
		wantBody   string
	}{
		{"all healthy", nil, nil, http.StatusOK, "ready"},
		{"redis down", nil, errors.New("dial tcp: refused"), http.StatusServiceUnavailable, "degraded"},
		{"postgres down", errors.New("pool closed"), nil, http.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
				CheckDatabase: func() error { return tt.database },
				CheckCache:    func() error { return tt.cache },
			}, logger)

			recorder := httptest.NewRecorder()
			liveness(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, http.StatusOK, recorder.Code)

			recorder = httptest.NewRecorder()
			readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))
			assert.Equal(t, tt.wantStatus, recorder.Code)

			var body readinessBody
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body.Data.Status)
			require.Len(t, body.Data.Checks, 2)
			assert.Equal(t, "postgres", body.Data.Checks[0].Name)
			assert.Equal(t, tt.database == nil, body.Data.Checks[0].OK)
			assert.Equal(t, tt.cache == nil, body.Data.Checks[1].OK)
		})
	}
}

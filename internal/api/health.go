// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"log/slog"
	"net/http"

	"github.com/taibuivan/gstone/internal/platform/constants"
	"github.com/taibuivan/gstone/internal/platform/respond"
)

// HealthDependencies holds the checks behind /ready. A nil check is skipped.
type HealthDependencies struct {
	// CheckDatabase pings the PostgreSQL pool.
	CheckDatabase func() error

	// CheckCache pings the Redis client holding refresh sessions.
	CheckCache func() error
}

type dependencyCheck struct {
	name  string
	check func() error
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type healthHandler struct {
	checks []dependencyCheck
	logger *slog.Logger
}

// NewHealthHandlers creates the /health and /ready handlers.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{logger: logger}

	for _, dependency := range []dependencyCheck{
		{name: "postgres", check: deps.CheckDatabase},
		{name: "redis", check: deps.CheckCache},
	} {
		if dependency.check != nil {
			handler.checks = append(handler.checks, dependency)
		}
	}

	return handler.liveness, handler.readiness
}

// liveness answers GET /health while the process is running.
func (handler *healthHandler) liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, map[string]string{constants.FieldStatus: "ok"})
}

// readiness answers GET /ready with 503 when any dependency check fails.
func (handler *healthHandler) readiness(writer http.ResponseWriter, _ *http.Request) {
	results := make([]checkResult, 0, len(handler.checks))
	status, httpStatus := "ready", http.StatusOK

	for _, dependency := range handler.checks {
		result := checkResult{Name: dependency.name, IsOK: true}

		if err := dependency.check(); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			status, httpStatus = "degraded", http.StatusServiceUnavailable

			handler.logger.Error("readiness_check_failed",
				slog.String("dependency", dependency.name),
				slog.Any("error", err),
			)
		}
		results = append(results, result)
	}

	respond.JSON(writer, httpStatus, respond.SuccessEnvelope{Data: map[string]any{
		constants.FieldStatus: status,
		constants.FieldChecks: results,
	}})
}

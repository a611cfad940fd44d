// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slider

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gstone/internal/platform/middleware"
	"github.com/taibuivan/gstone/internal/platform/projection"
	requestutil "github.com/taibuivan/gstone/internal/platform/request"
	"github.com/taibuivan/gstone/internal/platform/respond"
	"github.com/taibuivan/gstone/internal/platform/sec"
)

type Handler struct {
	service *Service
	baseURL string
}

func NewHandler(service *Service, baseURL string) *Handler {
	return &Handler{service: service, baseURL: baseURL}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listSliders)
	router.Get("/{id}", handler.getSlider)

	// Editors
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createSlider)
		editorRoute.Put("/{id}", handler.updateSlider)

		// Admin strict only
		editorRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteSlider)
	})
}

func (handler *Handler) listSliders(writer http.ResponseWriter, request *http.Request) {
	sliders, err := handler.service.ListSliders(request.Context(), Filter{IsActive: requestutil.QueryBool(request, "isActive")})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, projection.List(sliders, projection.FromRequest(request, handler.baseURL), Project))
}

func (handler *Handler) getSlider(writer http.ResponseWriter, request *http.Request) {
	sliderID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	slider, err := handler.service.GetSlider(request.Context(), sliderID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, Project(slider, projection.FromRequest(request, handler.baseURL)))
}

func (handler *Handler) createSlider(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	slider, err := handler.service.CreateSlider(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, Project(slider, projection.Admin(handler.baseURL)))
}

func (handler *Handler) updateSlider(writer http.ResponseWriter, request *http.Request) {
	sliderID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	slider, err := handler.service.UpdateSlider(request.Context(), sliderID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, Project(slider, projection.Admin(handler.baseURL)))
}

func (handler *Handler) deleteSlider(writer http.ResponseWriter, request *http.Request) {
	sliderID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteSlider(request.Context(), sliderID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Deleted(writer)
}

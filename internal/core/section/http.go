// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section

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
	router.Get("/", handler.listSections)
	router.Get("/{id}", handler.getSection)

	// Editors
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createSection)
		editorRoute.Put("/{id}", handler.updateSection)

		// Admin strict only
		editorRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteSection)
	})
}

// listSections serves GET /sections?page=about
func (handler *Handler) listSections(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		Page:     requestutil.Query(request, "page"),
		IsActive: requestutil.QueryBool(request, "isActive"),
	}

	sections, err := handler.service.ListSections(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, projection.List(sections, projection.FromRequest(request, handler.baseURL), Project))
}

func (handler *Handler) getSection(writer http.ResponseWriter, request *http.Request) {
	sectionID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	section, err := handler.service.GetSection(request.Context(), sectionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, Project(section, projection.FromRequest(request, handler.baseURL)))
}

func (handler *Handler) createSection(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	section, err := handler.service.CreateSection(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, Project(section, projection.Admin(handler.baseURL)))
}

func (handler *Handler) updateSection(writer http.ResponseWriter, request *http.Request) {
	sectionID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	section, err := handler.service.UpdateSection(request.Context(), sectionID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, Project(section, projection.Admin(handler.baseURL)))
}

func (handler *Handler) deleteSection(writer http.ResponseWriter, request *http.Request) {
	sectionID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteSection(request.Context(), sectionID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Deleted(writer)
}

// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gstone/internal/platform/middleware"
	"github.com/taibuivan/gstone/internal/platform/projection"
	requestutil "github.com/taibuivan/gstone/internal/platform/request"
	"github.com/taibuivan/gstone/internal/platform/respond"
	"github.com/taibuivan/gstone/internal/platform/sec"
)

// Handler serves /gallery-categories and /gallery-items.
type Handler struct {
	service *Service
	baseURL string
}

func NewHandler(service *Service, baseURL string) *Handler {
	return &Handler{service: service, baseURL: baseURL}
}

// RegisterCategoryRoutes mounts the gallery category endpoints.
func (handler *Handler) RegisterCategoryRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listCategories)
	router.Get("/by-slug/{slug}", handler.getCategoryBySlug)
	router.Get("/{id}", handler.getCategory)

	// Editors
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createCategory)
		editorRoute.Put("/{id}", handler.updateCategory)

		// Admin strict only
		editorRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteCategory)
	})
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	filter := CategoryFilter{
		IsActive: requestutil.QueryBool(request, "isActive"),
		Sort:     Sort(requestutil.Query(request, "sort")),
	}

	categories, err := handler.service.ListCategories(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, projection.List(categories, projection.FromRequest(request, handler.baseURL), ProjectCategory))
}

func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	categoryID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.GetCategory(request.Context(), categoryID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ProjectCategory(category, projection.FromRequest(request, handler.baseURL)))
}

/*
GET /api/v1/gallery-categories/by-slug/{slug}.

Response:
  - 200: Category view with an "items" array
  - 404: Gallery category not found
*/
func (handler *Handler) getCategoryBySlug(writer http.ResponseWriter, request *http.Request) {
	category, err := handler.service.GetCategoryBySlug(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ProjectCategoryDetail(category, projection.FromRequest(request, handler.baseURL)))
}

func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	var input CreateCategoryInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.CreateCategory(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, ProjectCategory(category, projection.Admin(handler.baseURL)))
}

func (handler *Handler) updateCategory(writer http.ResponseWriter, request *http.Request) {
	categoryID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateCategoryInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.UpdateCategory(request.Context(), categoryID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ProjectCategory(category, projection.Admin(handler.baseURL)))
}

func (handler *Handler) deleteCategory(writer http.ResponseWriter, request *http.Request) {
	categoryID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCategory(request.Context(), categoryID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Deleted(writer)
}

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

// RegisterItemRoutes mounts the gallery item endpoints.
func (handler *Handler) RegisterItemRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listItems)
	router.Get("/{id}", handler.getItem)

	// Editors
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createItem)
		editorRoute.Put("/{id}", handler.updateItem)

		// Admin strict only
		editorRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteItem)
	})
}

func (handler *Handler) listItems(writer http.ResponseWriter, request *http.Request) {
	filter := ItemFilter{
		GalleryCategoryID: requestutil.QueryInt64(request, "galleryCategoryId"),
		IsActive:          requestutil.QueryBool(request, "isActive"),
	}

	items, err := handler.service.ListItems(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, projection.List(items, projection.FromRequest(request, handler.baseURL), ProjectItem))
}

func (handler *Handler) getItem(writer http.ResponseWriter, request *http.Request) {
	itemID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.GetItem(request.Context(), itemID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ProjectItem(item, projection.FromRequest(request, handler.baseURL)))
}

func (handler *Handler) createItem(writer http.ResponseWriter, request *http.Request) {
	var input CreateItemInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.CreateItem(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, ProjectItem(item, projection.Admin(handler.baseURL)))
}

func (handler *Handler) updateItem(writer http.ResponseWriter, request *http.Request) {
	itemID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateItemInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.UpdateItem(request.Context(), itemID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ProjectItem(item, projection.Admin(handler.baseURL)))
}

func (handler *Handler) deleteItem(writer http.ResponseWriter, request *http.Request) {
	itemID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteItem(request.Context(), itemID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Deleted(writer)
}

// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gstone/internal/platform/middleware"
	requestutil "github.com/taibuivan/gstone/internal/platform/request"
	"github.com/taibuivan/gstone/internal/platform/respond"
	"github.com/taibuivan/gstone/internal/platform/sec"
	"github.com/taibuivan/gstone/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Post("/", handler.submitContact)

	// Back office
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Get("/", handler.listContacts)
		editorRoute.Get("/{id}", handler.getContact)
		editorRoute.Patch("/{id}/read", handler.markRead)

		// Admin strict only
		editorRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteContact)
	})
}

func (handler *Handler) submitContact(writer http.ResponseWriter, request *http.Request) {
	var input SubmitInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	contact, err := handler.service.Submit(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, contact)
}

// listContacts serves GET /contacts?isRead=false&page=1&limit=20
func (handler *Handler) listContacts(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	filter := Filter{IsRead: requestutil.QueryBool(request, "isRead")}

	contacts, total, err := handler.service.ListContacts(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, contacts, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getContact(writer http.ResponseWriter, request *http.Request) {
	contactID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	contact, err := handler.service.GetContact(request.Context(), contactID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, contact)
}

func (handler *Handler) markRead(writer http.ResponseWriter, request *http.Request) {
	contactID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	contact, err := handler.service.MarkRead(request.Context(), contactID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, contact)
}

func (handler *Handler) deleteContact(writer http.ResponseWriter, request *http.Request) {
	contactID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteContact(request.Context(), contactID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Deleted(writer)
}

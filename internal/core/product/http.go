// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gstone/internal/platform/middleware"
	"github.com/taibuivan/gstone/internal/platform/projection"
	requestutil "github.com/taibuivan/gstone/internal/platform/request"
	"github.com/taibuivan/gstone/internal/platform/respond"
	"github.com/taibuivan/gstone/internal/platform/sec"
	"github.com/taibuivan/gstone/pkg/pagination"
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
	router.Get("/", handler.listProducts)
	router.Get("/search", handler.searchProducts)
	router.Get("/by-slug/{slug}", handler.getProductBySlug)
	router.Get("/{id}", handler.getProduct)

	// Editors
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createProduct)
		editorRoute.Put("/{id}", handler.updateProduct)

		// Admin strict only
		editorRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteProduct)
	})
}

/*
GET /api/v1/products.

Request:
  - page, limit: int
  - companyId, categoryId: int
  - isActive: bool
  - sort: string (newest, oldest, az, za)

Response:
  - 200: Paginated product views
  - 400: Unknown sort key
*/
func (handler *Handler) listProducts(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		CompanyID:  requestutil.QueryInt64(request, "companyId"),
		CategoryID: requestutil.QueryInt64(request, "categoryId"),
		IsActive:   requestutil.QueryBool(request, "isActive"),
		Sort:       Sort(requestutil.Query(request, "sort")),
	}

	products, total, err := handler.service.ListProducts(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	views := projection.List(products, projection.FromRequest(request, handler.baseURL), Project)
	respond.Paginated(writer, views, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) searchProducts(writer http.ResponseWriter, request *http.Request) {
	filter := SearchFilter{
		Title:      requestutil.Query(request, "title"),
		CompanyID:  requestutil.QueryInt64(request, "companyId"),
		CategoryID: requestutil.QueryInt64(request, "categoryId"),
	}

	products, err := handler.service.SearchProducts(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, projection.List(products, projection.FromRequest(request, handler.baseURL), Project))
}

func (handler *Handler) getProduct(writer http.ResponseWriter, request *http.Request) {
	productID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	product, err := handler.service.GetProduct(request.Context(), productID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, Project(product, projection.FromRequest(request, handler.baseURL)))
}

func (handler *Handler) getProductBySlug(writer http.ResponseWriter, request *http.Request) {
	product, err := handler.service.GetProductBySlug(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, Project(product, projection.FromRequest(request, handler.baseURL)))
}

func (handler *Handler) createProduct(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	product, err := handler.service.CreateProduct(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, Project(product, projection.Admin(handler.baseURL)))
}

func (handler *Handler) updateProduct(writer http.ResponseWriter, request *http.Request) {
	productID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	product, err := handler.service.UpdateProduct(request.Context(), productID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, Project(product, projection.Admin(handler.baseURL)))
}

func (handler *Handler) deleteProduct(writer http.ResponseWriter, request *http.Request) {
	productID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteProduct(request.Context(), productID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Deleted(writer)
}

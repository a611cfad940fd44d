// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package company

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gstone/internal/platform/middleware"
	"github.com/taibuivan/gstone/internal/platform/projection"
	requestutil "github.com/taibuivan/gstone/internal/platform/request"
	"github.com/taibuivan/gstone/internal/platform/respond"
	"github.com/taibuivan/gstone/internal/platform/sec"
	"github.com/taibuivan/gstone/internal/upload"
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
	router.Get("/", handler.listCompanies)
	router.Get("/by-slug/{slug}", handler.getCompanyBySlug)
	router.Get("/{id}", handler.getCompany)

	// Editors
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/", handler.createCompany)
		editorRoute.Put("/{id}", handler.updateCompany)
		editorRoute.Post("/{id}/logo", handler.uploadLogo)

		// Admin strict only
		editorRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteCompany)
	})
}

func (handler *Handler) listCompanies(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		Search:       requestutil.Query(request, "search"),
		CategorySlug: requestutil.Query(request, "categorySlug"),
	}

	companies, err := handler.service.ListCompanies(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, projection.List(companies, projection.FromRequest(request, handler.baseURL), Project))
}

func (handler *Handler) getCompany(writer http.ResponseWriter, request *http.Request) {
	companyID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	company, err := handler.service.GetCompany(request.Context(), companyID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, Project(company, projection.FromRequest(request, handler.baseURL)))
}

func (handler *Handler) getCompanyBySlug(writer http.ResponseWriter, request *http.Request) {
	company, err := handler.service.GetCompanyBySlug(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, Project(company, projection.FromRequest(request, handler.baseURL)))
}

func (handler *Handler) createCompany(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	company, err := handler.service.CreateCompany(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, Project(company, projection.Admin(handler.baseURL)))
}

func (handler *Handler) updateCompany(writer http.ResponseWriter, request *http.Request) {
	companyID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	company, err := handler.service.UpdateCompany(request.Context(), companyID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, Project(company, projection.Admin(handler.baseURL)))
}

func (handler *Handler) uploadLogo(writer http.ResponseWriter, request *http.Request) {
	companyID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	file, closeFile, err := upload.ReadFile(writer, request, upload.KindImage)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer closeFile()

	company, err := handler.service.UploadLogo(request.Context(), companyID, file)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	opts := projection.Admin(handler.baseURL)
	respond.OK(writer, LogoView{Logo: opts.AssetPtr(company.Logo)})
}

func (handler *Handler) deleteCompany(writer http.ResponseWriter, request *http.Request) {
	companyID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCompany(request.Context(), companyID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Deleted(writer)
}

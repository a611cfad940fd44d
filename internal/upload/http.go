// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package upload

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gstone/internal/platform/apperr"
	"github.com/taibuivan/gstone/internal/platform/constants"
	"github.com/taibuivan/gstone/internal/platform/middleware"
	"github.com/taibuivan/gstone/internal/platform/respond"
	"github.com/taibuivan/gstone/internal/platform/sec"
	"github.com/taibuivan/gstone/internal/platform/validate"
)

// multipartOverhead leaves room for boundaries and headers around the file part.
const multipartOverhead = 1 << 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Group(func(editorRoute chi.Router) {
		editorRoute.Use(middleware.RequireRole(sec.RoleEditor))

		editorRoute.Post("/images", handler.upload(KindImage))
		editorRoute.Post("/pdfs", handler.upload(KindPDF))
	})
}

func (handler *Handler) upload(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		file, closeFile, err := ReadFile(writer, request, kind)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		defer closeFile()

		result, err := handler.service.Store(request.Context(), kind, file)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.Created(writer, result)
	}
}

/*
ReadFile extracts the "file" part of a multipart request.

The body is capped slightly above the size ceiling of kind so oversized uploads
are cut off early instead of being buffered.

Returns:
  - File: The uploaded file
  - func(): Releases the part and any temporary files; call it when done
  - error: VALIDATION_ERROR when the part is missing, PAYLOAD_TOO_LARGE when over the cap
*/
func ReadFile(writer http.ResponseWriter, request *http.Request, kind Kind) (File, func(), error) {
	request.Body = http.MaxBytesReader(writer, request.Body, kind.MaxSize()+multipartOverhead)

	if err := request.ParseMultipartForm(kind.MaxSize()); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return File{}, nil, apperr.PayloadTooLarge("File is too large")
		}
		return File{}, nil, validate.RequiredError(constants.UploadFormField, "A multipart file is required")
	}

	part, header, err := request.FormFile(constants.UploadFormField)
	if err != nil {
		request.MultipartForm.RemoveAll()
		return File{}, nil, validate.RequiredError(constants.UploadFormField, "A multipart file is required")
	}

	release := func() {
		part.Close()
		request.MultipartForm.RemoveAll()
	}

	return File{
		Name:         header.Filename,
		DeclaredType: header.Header.Get("Content-Type"),
		Size:         header.Size,
		Content:      part,
	}, release, nil
}

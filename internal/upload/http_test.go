// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package upload_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gstone/internal/platform/ctxutil"
	"github.com/taibuivan/gstone/internal/platform/sec"
	"github.com/taibuivan/gstone/internal/upload"
)

func multipartRequest(t *testing.T, target, field, filename, contentType string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := form.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, form.Close())

	request := httptest.NewRequest(http.MethodPost, target, &body)
	request.Header.Set("Content-Type", form.FormDataContentType())
	return request
}

func withEditor(request *http.Request) *http.Request {
	claims := &sec.AuthClaims{UserID: "u-1", Username: "editor", Role: string(sec.RoleEditor)}
	return request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
}

func newUploadRouter(store *memoryStorage) http.Handler {
	router := chi.NewRouter()
	router.Route("/uploads", upload.NewHandler(newService(store)).RegisterRoutes)
	return router
}

/*
TestHandler_Upload verifies the multipart endpoints end to end.
*/
func TestHandler_Upload(t *testing.T) {
	tests := []struct {
		name    string
		request *http.Request
		status  int
	}{
		{"image", withEditor(multipartRequest(t, "/uploads/images", "file", "logo.png", "image/png", pngBytes)), http.StatusCreated},
		{"pdf", withEditor(multipartRequest(t, "/uploads/pdfs", "file", "doc.pdf", "application/pdf", pdfBytes)), http.StatusCreated},
		{"wrong field", withEditor(multipartRequest(t, "/uploads/images", "image", "logo.png", "image/png", pngBytes)), http.StatusBadRequest},
		{"not multipart", withEditor(httptest.NewRequest(http.MethodPost, "/uploads/images", bytes.NewReader(pngBytes))), http.StatusBadRequest},
		{"anonymous", multipartRequest(t, "/uploads/images", "file", "logo.png", "image/png", pngBytes), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			newUploadRouter(newMemoryStorage()).ServeHTTP(recorder, tt.request)
			assert.Equal(t, tt.status, recorder.Code, recorder.Body.String())
		})
	}
}

func TestHandler_UploadResponse(t *testing.T) {
	store := newMemoryStorage()
	recorder := httptest.NewRecorder()

	newUploadRouter(store).ServeHTTP(recorder, withEditor(multipartRequest(t, "/uploads/images", "file", "logo.png", "image/png", pngBytes)))
	require.Equal(t, http.StatusCreated, recorder.Code)

	var envelope struct {
		Data upload.Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	assert.Equal(t, "logo.png", envelope.Data.OriginalName)
	assert.Equal(t, "image/png", envelope.Data.MimeType)
	assert.Equal(t, int64(len(pngBytes)), envelope.Data.Size)
	assert.Regexp(t, `^/uploads/images/[0-9a-f-]{36}\.png$`, envelope.Data.URL)
	assert.Equal(t, "https://api.example.az"+envelope.Data.URL, envelope.Data.AbsoluteURL)
	assert.Len(t, store.objects, 1)
}

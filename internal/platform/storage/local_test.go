// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gstone/internal/platform/storage"
)

/*
TestLocal_PutServeDelete verifies a file round trip through the local backend.
*/
func TestLocal_PutServeDelete(t *testing.T) {
	root := t.TempDir()
	backend, err := storage.NewLocal(root)
	require.NoError(t, err)

	ctx := context.Background()
	ref, err := backend.Put(ctx, storage.Object{
		Key:         "images/logo.png",
		ContentType: "image/png",
		Body:        strings.NewReader("png-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/images/logo.png", ref)

	content, err := os.ReadFile(filepath.Join(root, "images", "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))

	recorder := httptest.NewRecorder()
	backend.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/uploads/images/logo.png", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	body, _ := io.ReadAll(recorder.Body)
	assert.Equal(t, "png-bytes", string(body))

	require.NoError(t, backend.Delete(ctx, "images/logo.png"))
	require.NoError(t, backend.Delete(ctx, "images/logo.png"), "deleting a missing file is not an error")

	_, err = os.Stat(filepath.Join(root, "images", "logo.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocal_RejectsTraversal(t *testing.T) {
	backend, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"../secret", "images/../../x", "", `images\x.png`} {
		t.Run(key, func(t *testing.T) {
			_, err := backend.Put(context.Background(), storage.Object{Key: key, Body: strings.NewReader("x")})
			assert.ErrorIs(t, err, storage.ErrInvalidKey)
		})
	}
}

func TestLocal_HandlerHidesDirectories(t *testing.T) {
	backend, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	_, err = backend.Put(context.Background(), storage.Object{Key: "pdfs/a.pdf", Body: strings.NewReader("%PDF")})
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	backend.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/uploads/pdfs/", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

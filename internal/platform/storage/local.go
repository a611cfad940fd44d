// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/taibuivan/gstone/internal/platform/constants"
)

// Local stores files on the API host.
type Local struct {
	root string
}

// NewLocal prepares the upload directory.
func NewLocal(root string) (*Local, error) {
	absolute, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve upload dir: %w", err)
	}

	if err := os.MkdirAll(absolute, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create upload dir: %w", err)
	}
	return &Local{root: absolute}, nil
}

/*
Put writes the object through a temporary file and renames it into place, so
readers never observe a partially written upload.

Returns:
  - string: "/uploads/<key>"
  - error: ErrInvalidKey or filesystem errors
*/
func (local *Local) Put(context context.Context, object Object) (string, error) {
	key, err := cleanKey(object.Key)
	if err != nil {
		return "", err
	}

	target := filepath.Join(local.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("storage: create dir: %w", err)
	}

	temp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("storage: create temp file: %w", err)
	}
	defer os.Remove(temp.Name())

	if _, err := io.Copy(temp, contextReader{context: context, reader: object.Body}); err != nil {
		temp.Close()
		return "", fmt.Errorf("storage: write %s: %w", key, err)
	}
	if err := temp.Close(); err != nil {
		return "", fmt.Errorf("storage: close %s: %w", key, err)
	}

	if err := os.Rename(temp.Name(), target); err != nil {
		return "", fmt.Errorf("storage: publish %s: %w", key, err)
	}

	return constants.UploadURLPrefix + key, nil
}

// Delete removes the file for key.
func (local *Local) Delete(_ context.Context, key string) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}

	err = os.Remove(filepath.Join(local.root, filepath.FromSlash(key)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

// Handler serves stored files. Mount it under [constants.UploadURLPrefix].
// Directory listings are not exposed.
func (local *Local) Handler() http.Handler {
	prefix := strings.TrimSuffix(constants.UploadURLPrefix, "/")
	return http.StripPrefix(prefix, http.FileServer(filesOnly{http.Dir(local.root)}))
}

// filesOnly hides directories from http.FileServer.
type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil || info.IsDir() {
		file.Close()
		return nil, fs.ErrNotExist
	}
	return file, nil
}

// contextReader stops a copy once the request context is cancelled.
type contextReader struct {
	context context.Context
	reader  io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.context.Err(); err != nil {
		return 0, err
	}
	return c.reader.Read(p)
}

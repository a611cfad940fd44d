// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package storage persists uploaded files and tells callers where they are served.

Two backends are provided:

  - Local: files under a directory on disk, served by the API at /uploads/*.
  - S3: any S3-compatible bucket (AWS, MinIO, R2) through aws-sdk-go-v2.

The reference returned by [Storage.Put] is what gets stored on entities. Local
references are server-relative ("/uploads/images/x.png") and are turned into
absolute URLs by the projection layer; S3 references are already absolute.
*/
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/taibuivan/gstone/internal/platform/config"
)

// ErrInvalidKey is returned for object keys that could escape the storage root.
var ErrInvalidKey = errors.New("storage: invalid object key")

// Object is a file ready to be written.
type Object struct {
	Key         string // e.g. "images/0190f5c2-....png"
	ContentType string
	Size        int64
	Body        io.Reader
}

// Storage is the port used by the upload service.
type Storage interface {
	// Put writes the object and returns its public reference.
	Put(context context.Context, object Object) (string, error)
	// Delete removes the object. A missing object is not an error.
	Delete(context context.Context, key string) error
}

// New builds the backend selected by STORAGE_DRIVER.
func New(context context.Context, cfg *config.Config, logger *slog.Logger) (Storage, error) {
	switch cfg.StorageDriver {
	case config.StorageS3:
		backend, err := NewS3(context, S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			UsePathStyle:    cfg.S3UsePathStyle,
			PublicURL:       cfg.S3PublicURL,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("storage ready", slog.String("driver", "s3"), slog.String("bucket", cfg.S3Bucket))
		return backend, nil

	case config.StorageLocal:
		backend, err := NewLocal(cfg.UploadDir)
		if err != nil {
			return nil, err
		}
		logger.Info("storage ready", slog.String("driver", "local"), slog.String("dir", cfg.UploadDir))
		return backend, nil

	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.StorageDriver)
	}
}

// cleanKey normalizes an object key and rejects traversal attempts.
func cleanKey(key string) (string, error) {
	if key == "" || strings.Contains(key, "\\") {
		return "", ErrInvalidKey
	}

	cleaned := path.Clean("/" + key)[1:]
	if cleaned == "" || cleaned != strings.TrimPrefix(key, "/") {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}

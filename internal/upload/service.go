// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/taibuivan/gstone/internal/platform/apperr"
	"github.com/taibuivan/gstone/internal/platform/storage"
	"github.com/taibuivan/gstone/internal/platform/validate"
	"github.com/taibuivan/gstone/pkg/asset"
	"github.com/taibuivan/gstone/pkg/uuid"
)

// sniffLen is the number of leading bytes http.DetectContentType inspects.
const sniffLen = 512

type Service struct {
	storage storage.Storage
	baseURL string
	logger  *slog.Logger
}

func NewService(storage storage.Storage, baseURL string, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		baseURL: baseURL,
		logger:  logger,
	}
}

/*
Store validates file against the rules of kind and writes it to storage.

Parameters:
  - context: context.Context
  - kind: Kind (KindImage or KindPDF)
  - file: File (Multipart upload)

Returns:
  - *Result: Stored reference plus its absolute URL
  - error: PAYLOAD_TOO_LARGE, UNSUPPORTED_MEDIA_TYPE, VALIDATION_ERROR or storage failures
*/
func (service *Service) Store(context context.Context, kind Kind, file File) (*Result, error) {
	limits, ok := rules[kind]
	if !ok {
		return nil, apperr.Internal(fmt.Errorf("upload: unknown kind %q", kind))
	}

	if file.Size <= 0 {
		return nil, validate.RequiredError("file", "File is empty")
	}
	if file.Size > limits.maxSize {
		return nil, apperr.PayloadTooLarge(fmt.Sprintf("File exceeds the %d MiB limit", limits.maxSize>>20))
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file.Content, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, apperr.Internal(fmt.Errorf("upload: read %s: %w", file.Name, err))
	}
	head = head[:n]

	mimeType, ext, err := detectType(limits, head, file.DeclaredType)
	if err != nil {
		return nil, err
	}

	reference, err := service.storage.Put(context, storage.Object{
		Key:         string(kind) + "/" + uuid.New() + ext,
		ContentType: mimeType,
		Size:        file.Size,
		Body:        io.MultiReader(bytes.NewReader(head), file.Content),
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	result := &Result{
		URL:          reference,
		OriginalName: filepath.Base(file.Name),
		MimeType:     mimeType,
		Size:         file.Size,
	}
	if absolute := asset.Normalize(reference, service.baseURL); absolute != nil {
		result.AbsoluteURL = *absolute
	}

	service.logger.Info("file_uploaded",
		slog.String("kind", string(kind)),
		slog.String("url", reference),
		slog.Int64("size", file.Size),
	)
	return result, nil
}

// detectType sniffs the content and checks it against the rule and the declared type.
func detectType(limits rule, head []byte, declared string) (string, string, error) {
	sniffed := normalizeType(http.DetectContentType(head))

	ext, ok := limits.types[sniffed]
	if !ok {
		return "", "", apperr.UnsupportedMediaType(fmt.Sprintf("File type %s is not allowed", sniffed))
	}

	declared = normalizeType(declared)
	if declared != "" && declared != "application/octet-stream" && declared != sniffed {
		return "", "", apperr.UnsupportedMediaType("File content does not match its declared type")
	}
	return sniffed, ext, nil
}

// normalizeType strips parameters and folds the non-standard "image/jpg" alias.
func normalizeType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}

	if mediaType == "image/jpg" || mediaType == "image/pjpeg" {
		return "image/jpeg"
	}
	return mediaType
}

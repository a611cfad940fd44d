// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package upload accepts image and PDF files from editors and hands them to storage.

The content type is sniffed from the file bytes and must agree with the type the
client declared. Accepted files get a UUIDv7 object key so names never collide.
*/
package upload

import (
	"io"

	"github.com/taibuivan/gstone/internal/platform/constants"
)

// Kind selects the accepted formats, size ceiling and key prefix of an upload.
type Kind string

const (
	KindImage Kind = "images"
	KindPDF   Kind = "pdfs"
)

// rule describes what a Kind accepts. Types maps a MIME type to its file extension.
type rule struct {
	maxSize int64
	types   map[string]string
}

var rules = map[Kind]rule{
	KindImage: {
		maxSize: constants.MaxImageSize,
		types: map[string]string{
			"image/jpeg": ".jpg",
			"image/png":  ".png",
			"image/webp": ".webp",
		},
	},
	KindPDF: {
		maxSize: constants.MaxPDFSize,
		types: map[string]string{
			"application/pdf": ".pdf",
		},
	},
}

// MaxSize returns the size ceiling for kind, or 0 for an unknown kind.
func (k Kind) MaxSize() int64 {
	return rules[k].maxSize
}

// File is an incoming upload as read from the multipart form.
type File struct {
	Name         string
	DeclaredType string
	Size         int64
	Content      io.Reader
}

// Result describes a stored file.
type Result struct {
	URL          string `json:"url"`
	OriginalName string `json:"originalName"`
	MimeType     string `json:"mimetype"`
	Size         int64  `json:"size"`
	AbsoluteURL  string `json:"absoluteUrl"`
}

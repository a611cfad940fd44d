// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package asset turns stored asset references into absolute URLs.

Images and documents are persisted either as server-relative paths
("/uploads/images/a.png") or as absolute URLs (CDN, S3 public bucket).
Clients always receive absolute URLs.

Rules, applied after trimming whitespace:

  - Empty reference: no URL (nil).
  - Starts with "http://" or "https://": returned unchanged.
  - Already starts with the base URL: returned unchanged.
  - Otherwise: base URL + reference, concatenated verbatim.

No URL validation or slash normalization is performed.
*/
package asset

import (
	"strings"

	"github.com/taibuivan/gstone/pkg/pointer"
	"github.com/taibuivan/gstone/pkg/slice"
)

// Normalize returns the absolute URL for ref, or nil when ref is blank.
func Normalize(ref, baseURL string) *string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return &ref
	}

	if baseURL != "" && strings.HasPrefix(ref, baseURL) {
		return &ref
	}

	full := baseURL + ref
	return &full
}

// NormalizePtr is [Normalize] for nullable columns.
func NormalizePtr(ref *string, baseURL string) *string {
	if ref == nil {
		return nil
	}
	return Normalize(*ref, baseURL)
}

// NormalizeList normalizes every reference and drops the blank ones.
//
// The result is never nil so it always encodes as a JSON array.
func NormalizeList(refs []string, baseURL string) []string {
	return slice.FilterMap(refs, func(ref string) (string, bool) {
		u := Normalize(ref, baseURL)
		return pointer.Val(u), u != nil
	})
}

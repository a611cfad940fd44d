// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination reads page requests from the query string and describes
// the page that was served.
//
// Clients send "page" (1-based) and either "limit" or "pageSize". Listing
// endpoints that do not paginate ignore both.
package pagination

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is the page size when the client sends none.
	DefaultLimit = 10
	// MaxLimit caps the page size. Larger requests are clamped to it.
	MaxLimit = 100
)

// sizeParams are the accepted names for the page size, in priority order.
var sizeParams = []string{"limit", "pageSize"}

// Params is a validated page request.
type Params struct {
	Page  int
	Limit int
}

// Offset is the number of rows to skip.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta describes the served page in the response envelope.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta computes the page count for total rows split into pages of limit.
func NewMeta(page, limit, total int) Meta {
	meta := Meta{Page: page, Limit: limit, Total: total}
	if limit > 0 {
		meta.TotalPages = (total + limit - 1) / limit
	}
	return meta
}

/*
FromRequest parses the page request.

A missing or non-numeric value takes its default. A page below 1 becomes 1;
a size below 1 takes [DefaultLimit] and one above [MaxLimit] is clamped.
*/
func FromRequest(request *http.Request) Params {
	query := request.URL.Query()

	page := positiveInt(query.Get("page"), 1)

	limit := DefaultLimit
	for _, name := range sizeParams {
		if raw := query.Get(name); raw != "" {
			limit = positiveInt(raw, DefaultLimit)
			break
		}
	}

	return Params{Page: page, Limit: min(limit, MaxLimit)}
}

func positiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

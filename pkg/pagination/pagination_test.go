// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/gstone/pkg/pagination"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		page   int
		limit  int
		offset int
	}{
		{"defaults", "", 1, 10, 0},
		{"limit", "?page=3&limit=20", 3, 20, 40},
		{"pageSize alias", "?page=2&pageSize=5", 2, 5, 5},
		{"limit wins over pageSize", "?limit=7&pageSize=5", 1, 7, 0},
		{"clamped to max", "?limit=1000", 1, 100, 0},
		{"invalid values", "?page=-4&limit=abc", 1, 10, 0},
		{"zero size", "?pageSize=0", 1, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := pagination.FromRequest(httptest.NewRequest("GET", "/products"+tt.query, nil))

			assert.Equal(t, tt.page, params.Page)
			assert.Equal(t, tt.limit, params.Limit)
			assert.Equal(t, tt.offset, params.Offset())
		})
	}
}

func TestNewMeta(t *testing.T) {
	assert.Equal(t, pagination.Meta{Page: 1, Limit: 10, Total: 21, TotalPages: 3}, pagination.NewMeta(1, 10, 21))
	assert.Equal(t, 0, pagination.NewMeta(1, 10, 0).TotalPages)
	assert.Equal(t, 0, pagination.NewMeta(1, 0, 5).TotalPages)
}

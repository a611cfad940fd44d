// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package asset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taibuivan/gstone/pkg/asset"
	"github.com/taibuivan/gstone/pkg/pointer"
)

const base = "https://api.example.az"

/*
TestNormalize covers every normalization rule.
*/
func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want *string
	}{
		{"relative path", "/uploads/images/a.png", pointer.To(base + "/uploads/images/a.png")},
		{"surrounding whitespace", "  /uploads/x.pdf \n", pointer.To(base + "/uploads/x.pdf")},
		{"https passthrough", "https://cdn.example.com/a.png", pointer.To("https://cdn.example.com/a.png")},
		{"http passthrough", "http://cdn.example.com/a.png", pointer.To("http://cdn.example.com/a.png")},
		{"already based", base + "/uploads/a.png", pointer.To(base + "/uploads/a.png")},
		{"no slash is concatenated verbatim", "uploads/a.png", pointer.To(base + "uploads/a.png")},
		{"empty", "", nil},
		{"blank", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, asset.Normalize(tt.ref, base))
		})
	}
}

func TestNormalizePtr(t *testing.T) {
	assert.Nil(t, asset.NormalizePtr(nil, base))

	got := asset.NormalizePtr(pointer.To("/a.png"), base)
	require.NotNil(t, got)
	assert.Equal(t, base+"/a.png", *got)
}

/*
TestNormalizeList verifies blank entries are dropped and the result is never nil.
*/
func TestNormalizeList(t *testing.T) {
	got := asset.NormalizeList([]string{"/a.png", "", "https://x.io/b.png", "  "}, base)
	assert.Equal(t, []string{base + "/a.png", "https://x.io/b.png"}, got)

	empty := asset.NormalizeList(nil, base)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

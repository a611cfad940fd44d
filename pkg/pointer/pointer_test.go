// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gstone/pkg/pointer"
)

func TestValAndFallback(t *testing.T) {
	var missing *int

	assert.Equal(t, 0, pointer.Val(missing))
	assert.Equal(t, 7, pointer.Val(pointer.To(7)))
	assert.Equal(t, 3, pointer.Fallback(missing, 3))
	assert.Equal(t, 7, pointer.Fallback(pointer.To(7), 3))
}

func TestNonBlank(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want *string
	}{
		{"nil", nil, nil},
		{"empty", pointer.To(""), nil},
		{"spaces", pointer.To("   "), nil},
		{"trimmed", pointer.To("  /uploads/images/a.png "), pointer.To("/uploads/images/a.png")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pointer.NonBlank(tt.in))
		})
	}
}

func TestPatch_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    pointer.Patch[int64]
	}{
		{"omitted", `{}`, pointer.Patch[int64]{}},
		{"null", `{"parentId":null}`, pointer.PatchNull[int64]()},
		{"value", `{"parentId":12}`, pointer.PatchTo[int64](12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input struct {
				ParentID pointer.Patch[int64] `json:"parentId"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &input))
			assert.Equal(t, tt.want, input.ParentID)
		})
	}

	var input struct {
		ParentID pointer.Patch[int64] `json:"parentId"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"parentId":"x"}`), &input))
}

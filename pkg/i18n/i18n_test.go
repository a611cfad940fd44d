// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taibuivan/gstone/pkg/i18n"
)

/*
TestResolve verifies exact-tag lookup without fallback.
*/
func TestResolve(t *testing.T) {
	title := i18n.Text{i18n.LangAZ: "Kateqoriya", i18n.LangEN: "Category"}

	tests := []struct {
		name string
		text i18n.Text
		lang i18n.Lang
		want string
	}{
		{"exact az", title, i18n.LangAZ, "Kateqoriya"},
		{"exact en", title, i18n.LangEN, "Category"},
		{"missing ru does not fall back", title, i18n.LangRU, ""},
		{"unknown tag", title, i18n.Lang("fr"), ""},
		{"nil text", nil, i18n.LangAZ, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.Resolve(tt.text, tt.lang))
		})
	}
}

/*
TestParseAcceptLanguage verifies that only the leftmost primary subtag is used.
*/
func TestParseAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   i18n.Lang
	}{
		{"", i18n.LangAZ},
		{"   ", i18n.LangAZ},
		{"en-US,en;q=0.9,az;q=0.8", i18n.LangEN},
		{"ru", i18n.LangRU},
		{"RU-ru", i18n.LangRU},
		{"az;q=0.7, en", i18n.LangAZ},
		{"en_GB", i18n.LangEN},
		{",en", i18n.LangAZ},
		{"fr-CA", i18n.Lang("fr")},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.ParseAcceptLanguage(tt.header))
		})
	}
}

func TestText_Merge(t *testing.T) {
	original := i18n.Text{i18n.LangAZ: "Köhnə", i18n.LangEN: "Old"}

	merged := original.Merge(i18n.Text{i18n.LangEN: "New", i18n.LangRU: "Новый"})

	assert.Equal(t, i18n.Text{i18n.LangAZ: "Köhnə", i18n.LangEN: "New", i18n.LangRU: "Новый"}, merged)
	assert.Equal(t, "Old", original.Get(i18n.LangEN), "merge must not mutate the receiver")

	var empty i18n.Text
	assert.Equal(t, i18n.Text{i18n.LangAZ: "x"}, empty.Merge(i18n.Text{i18n.LangAZ: "x"}))
}

func TestText_Clone(t *testing.T) {
	var nilText i18n.Text
	assert.Nil(t, nilText.Clone())

	src := i18n.Text{i18n.LangAZ: "a"}
	dst := src.Clone()
	dst[i18n.LangAZ] = "b"
	assert.Equal(t, "a", src.Primary())
}

func TestLang_IsSupported(t *testing.T) {
	assert.True(t, i18n.LangRU.IsSupported())
	assert.False(t, i18n.Lang("de").IsSupported())
}

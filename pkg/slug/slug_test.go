// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taibuivan/gstone/pkg/slug"
)

/*
TestFrom covers transliteration, accent stripping and hyphen cleanup.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain ascii", "Hello, World!!", "hello-world"},
		{"azerbaijani dotless i", "Tikinti Materialları", "tikinti-materiallari"},
		{"azerbaijani schwa and accents", "Şəki Çörəyi", "seki-coreyi"},
		{"azerbaijani g breve with digits", "Ağac 2024", "agac-2024"},
		{"dotted capital I", "İstanbul", "istanbul"},
		{"russian", "Привет мир", "privet-mir"},
		{"russian multi-letter", "Щука", "shchuka"},
		{"russian hard sign dropped", "Объект", "obekt"},
		{"german sharp s", "Straße", "strasse"},
		{"edge hyphens", "--a--b--", "a-b"},
		{"blank", "   ", ""},
		{"empty", "", ""},
		{"symbols only", "!@#$%", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slug.From(tt.input)
			assert.Equal(t, tt.want, got)
			if got != "" {
				assert.True(t, slug.Valid(got), "slug %q must match the slug pattern", got)
			}
		})
	}
}

/*
TestFrom_Idempotent verifies that slugifying a slug does not change it.
*/
func TestFrom_Idempotent(t *testing.T) {
	inputs := []string{"Şəki Çörəyi", "Привет, мир!", "  Mixed CASE  text  ", "a_b.c/d"}

	for _, in := range inputs {
		once := slug.From(in)
		assert.Equal(t, once, slug.From(once), "input %q", in)
	}
}

/*
TestRegenerate verifies that the slug only follows changes of the source title.
*/
func TestRegenerate(t *testing.T) {
	tests := []struct {
		name        string
		previous    string
		next        string
		current     string
		want        string
		regenerated bool
	}{
		{"source changed", "Köhnə ad", "Yeni ad", "kohne-ad", "yeni-ad", true},
		{"source unchanged keeps manual slug", "Köhnə ad", "Köhnə ad", "custom", "custom", false},
		{"source not supplied", "Köhnə ad", "", "kohne-ad", "kohne-ad", false},
		{"source set for first time", "", "Ad", "", "ad", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := slug.Regenerate(tt.previous, tt.next, tt.current)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.regenerated, changed)
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, slug.Valid("a-1-b"))
	assert.False(t, slug.Valid("-a"))
	assert.False(t, slug.Valid("a--b"))
	assert.False(t, slug.Valid("A"))
	assert.False(t, slug.Valid(""))
}

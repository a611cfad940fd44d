// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package i18n models multi-language text values and resolves them for a caller.

Every human-readable field in GStone (titles, descriptions, subtitles) is stored
as a [Text]: a map from language tag to the translated string.

Usage:

	lang := i18n.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	title := i18n.Resolve(category.Title, lang)

Resolution is exact. A missing translation resolves to the empty string and never
falls back to the default language.
*/
package i18n

import "strings"

// # Languages

// Lang is a primary language subtag such as "az".
type Lang string

const (
	// LangAZ is Azerbaijani, the primary content language.
	LangAZ Lang = "az"
	// LangEN is English.
	LangEN Lang = "en"
	// LangRU is Russian.
	LangRU Lang = "ru"

	// DefaultLang is used when a request carries no language preference.
	DefaultLang = LangAZ
)

// Supported lists the languages an editor may fill in.
var Supported = []Lang{LangAZ, LangEN, LangRU}

// IsSupported reports whether l is one of the [Supported] languages.
func (l Lang) IsSupported() bool {
	for _, s := range Supported {
		if s == l {
			return true
		}
	}
	return false
}

// String implements [fmt.Stringer].
func (l Lang) String() string { return string(l) }

// # Localized Text

// Text maps a language tag to its translation.
//
// It is stored as a JSONB object and scans directly from pgx.
// A nil Text is valid and resolves to "" for every language.
type Text map[Lang]string

// Get returns the translation for lang, or "" when absent.
func (t Text) Get(lang Lang) string {
	return t[lang]
}

// Primary returns the Azerbaijani translation, the source for slugs.
func (t Text) Primary() string {
	return t[LangAZ]
}

// Clone returns an independent copy of t. Nil stays nil.
func (t Text) Clone() Text {
	if t == nil {
		return nil
	}

	out := make(Text, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Merge returns a copy of t with every translation in patch applied.
//
// Partial updates send only the languages being edited; the rest are kept.
// An empty string in patch clears that language.
func (t Text) Merge(patch Text) Text {
	out := t.Clone()
	if out == nil {
		out = Text{}
	}

	for k, v := range patch {
		out[k] = v
	}
	return out
}

// # Resolution

// Resolve returns the translation of text for lang.
//
// The lookup is exact: a missing tag or a nil text yields "".
func Resolve(text Text, lang Lang) string {
	if text == nil {
		return ""
	}
	return text[lang]
}

// ParseAcceptLanguage extracts the preferred language from an Accept-Language header.
//
// Only the leftmost entry is considered and quality weights are ignored:
// "en-US,en;q=0.9,az;q=0.8" yields "en". An empty header yields [DefaultLang].
// The returned tag is not checked against [Supported].
func ParseAcceptLanguage(header string) Lang {
	first, _, _ := strings.Cut(header, ",")
	first, _, _ = strings.Cut(first, ";")

	primary := first
	if i := strings.IndexAny(first, "-_"); i >= 0 {
		primary = first[:i]
	}

	primary = strings.ToLower(strings.TrimSpace(primary))
	if primary == "" {
		return DefaultLang
	}

	return Lang(primary)
}

// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package projection shapes persisted entities into API views.

Every entity has two representations:

  - Public: each localized field is resolved to a single string for the caller's
    language. Relation summaries are {id, title} with a resolved title.
  - Admin: localized fields are exposed as the full language map so editors can
    see and fill every translation.

Asset references are turned into absolute URLs in both modes.

Usage:

	opts := projection.FromRequest(r, cfg.BaseURL)
	respond.OK(w, category.Project(entity, opts))

Each entity package declares its own PublicView and AdminView types; this package
only supplies the shared options and field helpers. Relations are projected one
level deep as summaries and never recurse into their own relations.
*/
package projection

import (
	"net/http"
	"strings"

	"github.com/taibuivan/gstone/pkg/asset"
	"github.com/taibuivan/gstone/pkg/i18n"
	"github.com/taibuivan/gstone/pkg/slice"
)

// # Options

// Mode selects which representation is produced.
type Mode string

const (
	// ModePublic resolves localized fields for one language.
	ModePublic Mode = "public"
	// ModeAdmin exposes every translation.
	ModeAdmin Mode = "admin"
)

const (
	// QueryAllLanguages switches a read endpoint to the admin view.
	QueryAllLanguages = "allLanguages"
	// QueryLang overrides the Accept-Language header.
	QueryLang = "lang"
)

// Options carries the per-request projection parameters.
type Options struct {
	Mode    Mode
	Lang    i18n.Lang
	BaseURL string
}

// Public returns options for the single-language view.
func Public(lang i18n.Lang, baseURL string) Options {
	return Options{Mode: ModePublic, Lang: lang, BaseURL: baseURL}
}

// Admin returns options for the all-languages view.
func Admin(baseURL string) Options {
	return Options{Mode: ModeAdmin, Lang: i18n.DefaultLang, BaseURL: baseURL}
}

/*
FromRequest derives projection options from an incoming request.

The language comes from the Accept-Language header unless a "lang" query parameter
is present. "allLanguages=true" selects the admin view.

Parameters:
  - request: *http.Request
  - baseURL: string (Public origin prepended to relative asset paths)

Returns:
  - Options: Ready to pass to an entity's Project function
*/
func FromRequest(request *http.Request, baseURL string) Options {
	query := request.URL.Query()

	lang := i18n.ParseAcceptLanguage(request.Header.Get("Accept-Language"))
	if override := query.Get(QueryLang); override != "" {
		lang = i18n.ParseAcceptLanguage(override)
	}

	mode := ModePublic
	switch strings.ToLower(query.Get(QueryAllLanguages)) {
	case "true", "1":
		mode = ModeAdmin
	}

	return Options{Mode: mode, Lang: lang, BaseURL: baseURL}
}

// IsAdmin reports whether the admin view is requested.
func (o Options) IsAdmin() bool {
	return o.Mode == ModeAdmin
}

// # Field Helpers

// Resolve returns the translation of text for the options' language.
func (o Options) Resolve(text i18n.Text) string {
	return i18n.Resolve(text, o.Lang)
}

// Translations returns text for the admin view, encoding a missing map as {}.
func (o Options) Translations(text i18n.Text) i18n.Text {
	if text == nil {
		return i18n.Text{}
	}
	return text.Clone()
}

// ResolvePtr resolves an optional localized field. A nil text resolves to "".
func (o Options) ResolvePtr(text i18n.Text) *string {
	s := o.Resolve(text)
	return &s
}

// Asset normalizes a required asset reference.
func (o Options) Asset(ref string) *string {
	return asset.Normalize(ref, o.BaseURL)
}

// AssetPtr normalizes an optional asset reference.
func (o Options) AssetPtr(ref *string) *string {
	return asset.NormalizePtr(ref, o.BaseURL)
}

// Assets normalizes an asset list. The result is never nil.
func (o Options) Assets(refs []string) []string {
	return asset.NormalizeList(refs, o.BaseURL)
}

// # Relation Summaries

// PublicSummary is the public shape of a related entity.
type PublicSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// AdminSummary is the admin shape of a related entity.
type AdminSummary struct {
	ID    int64     `json:"id"`
	Title i18n.Text `json:"title"`
}

// Ref is the minimal data needed to summarize a relation.
type Ref struct {
	ID    int64
	Title i18n.Text
}

// PublicRef summarizes ref for the public view.
func (o Options) PublicRef(ref Ref) PublicSummary {
	return PublicSummary{ID: ref.ID, Title: o.Resolve(ref.Title)}
}

// AdminRef summarizes ref for the admin view.
func (o Options) AdminRef(ref Ref) AdminSummary {
	return AdminSummary{ID: ref.ID, Title: o.Translations(ref.Title)}
}

// PublicRefPtr summarizes an optional relation. Nil stays nil.
func (o Options) PublicRefPtr(ref *Ref) *PublicSummary {
	if ref == nil {
		return nil
	}
	s := o.PublicRef(*ref)
	return &s
}

// AdminRefPtr summarizes an optional relation. Nil stays nil.
func (o Options) AdminRefPtr(ref *Ref) *AdminSummary {
	if ref == nil {
		return nil
	}
	s := o.AdminRef(*ref)
	return &s
}

// PublicRefs summarizes a relation list. The result is never nil.
func (o Options) PublicRefs(refs []Ref) []PublicSummary {
	return slice.Map(refs, o.PublicRef)
}

// AdminRefs summarizes a relation list. The result is never nil.
func (o Options) AdminRefs(refs []Ref) []AdminSummary {
	return slice.Map(refs, o.AdminRef)
}

// # Collections

// List projects every item with fn. The result is never nil.
func List[T any](items []T, opts Options, fn func(T, Options) any) []any {
	return slice.Map(items, func(item T) any { return fn(item, opts) })
}

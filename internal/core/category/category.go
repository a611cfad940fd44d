// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package category manages the product catalogue tree.

Categories form a shallow hierarchy (parent/children) and are linked to
companies through a many-to-many junction. The slug is derived from the
Azerbaijani title and only changes when that title changes.
*/
package category

import (
	"time"

	"github.com/taibuivan/gstone/internal/platform/projection"
	"github.com/taibuivan/gstone/pkg/i18n"
	"github.com/taibuivan/gstone/pkg/pointer"
)

// Category is a catalogue node as stored, with its first-level relations loaded.
type Category struct {
	ID        int64
	Title     i18n.Text
	Slug      string
	ParentID  *int64
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	Parent    *projection.Ref
	Children  []projection.Ref
	Companies []projection.Ref
}

// Filter narrows the category listing.
type Filter struct {
	IsActive     *bool
	Search       string // ILIKE over every title translation
	CategorySlug string
	CompanySlug  string
}

// CreateInput is the payload for POST /categories.
type CreateInput struct {
	Title      i18n.Text `json:"title"`
	ParentID   *int64    `json:"parentId"`
	IsActive   *bool     `json:"isActive"`
	CompanyIDs []int64   `json:"companyIds"`
}

// UpdateInput is the partial payload for PUT /categories/{id}.
// A nil field is left unchanged; CompanyIDs replaces the whole link set when present.
// "parentId": null detaches the category from its parent.
type UpdateInput struct {
	Title      i18n.Text            `json:"title"`
	ParentID   pointer.Patch[int64] `json:"parentId"`
	IsActive   *bool                `json:"isActive"`
	CompanyIDs *[]int64             `json:"companyIds"`
}

// Global field names for validation
const (
	FieldTitle      = "title"
	FieldParentID   = "parentId"
	FieldCompanyIDs = "companyIds"
)

const maxTitleLen = 255

// # Views

// PublicView is the single-language shape of a category.
type PublicView struct {
	ID        int64                      `json:"id"`
	Title     string                     `json:"title"`
	Slug      string                     `json:"slug"`
	IsActive  bool                       `json:"isActive"`
	ParentID  *int64                     `json:"parentId"`
	Parent    *projection.PublicSummary  `json:"parent"`
	Children  []projection.PublicSummary `json:"children"`
	Companies []projection.PublicSummary `json:"companies"`
	CreatedAt time.Time                  `json:"createdAt"`
	UpdatedAt time.Time                  `json:"updatedAt"`
}

// AdminView exposes every translation of a category.
type AdminView struct {
	ID        int64                     `json:"id"`
	Title     i18n.Text                 `json:"title"`
	Slug      string                    `json:"slug"`
	IsActive  bool                      `json:"isActive"`
	ParentID  *int64                    `json:"parentId"`
	Parent    *projection.AdminSummary  `json:"parent"`
	Children  []projection.AdminSummary `json:"children"`
	Companies []projection.AdminSummary `json:"companies"`
	CreatedAt time.Time                 `json:"createdAt"`
	UpdatedAt time.Time                 `json:"updatedAt"`
}

// Project shapes a category for the requested view.
func Project(category *Category, opts projection.Options) any {
	if opts.IsAdmin() {
		return AdminView{
			ID:        category.ID,
			Title:     opts.Translations(category.Title),
			Slug:      category.Slug,
			IsActive:  category.IsActive,
			ParentID:  category.ParentID,
			Parent:    opts.AdminRefPtr(category.Parent),
			Children:  opts.AdminRefs(category.Children),
			Companies: opts.AdminRefs(category.Companies),
			CreatedAt: category.CreatedAt,
			UpdatedAt: category.UpdatedAt,
		}
	}

	return PublicView{
		ID:        category.ID,
		Title:     opts.Resolve(category.Title),
		Slug:      category.Slug,
		IsActive:  category.IsActive,
		ParentID:  category.ParentID,
		Parent:    opts.PublicRefPtr(category.Parent),
		Children:  opts.PublicRefs(category.Children),
		Companies: opts.PublicRefs(category.Companies),
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

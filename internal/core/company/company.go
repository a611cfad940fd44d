// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package company manages the manufacturers and suppliers shown in the catalogue.

A company belongs to any number of categories. Its logo is an uploaded image
stored as an asset reference.
*/
package company

import (
	"time"

	"github.com/taibuivan/gstone/internal/platform/projection"
	"github.com/taibuivan/gstone/pkg/i18n"
)

// Company is a catalogue company with its categories loaded.
type Company struct {
	ID          int64
	Title       i18n.Text
	Description i18n.Text
	Logo        *string
	Slug        string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Categories []projection.Ref
}

// Filter narrows the company listing.
type Filter struct {
	Search       string
	CategorySlug string
}

// CreateInput is the payload for POST /companies.
type CreateInput struct {
	Title       i18n.Text `json:"title"`
	Description i18n.Text `json:"description"`
	Logo        *string   `json:"logo"`
	CategoryIDs []int64   `json:"categoryIds"`
}

// UpdateInput is the partial payload for PUT /companies/{id}.
type UpdateInput struct {
	Title       i18n.Text `json:"title"`
	Description i18n.Text `json:"description"`
	Logo        *string   `json:"logo"`
	CategoryIDs *[]int64  `json:"categoryIds"`
}

// LogoView is the response of POST /companies/{id}/logo.
type LogoView struct {
	Logo *string `json:"logo"`
}

// Global field names for validation
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldLogo        = "logo"
	FieldCategoryIDs = "categoryIds"
)

const (
	maxTitleLen       = 255
	maxDescriptionLen = 5000
)

// # Views

type PublicView struct {
	ID          int64                      `json:"id"`
	Title       string                     `json:"title"`
	Description *string                    `json:"description"`
	Logo        *string                    `json:"logo"`
	Slug        string                     `json:"slug"`
	Categories  []projection.PublicSummary `json:"categories"`
	CreatedAt   time.Time                  `json:"createdAt"`
	UpdatedAt   time.Time                  `json:"updatedAt"`
}

type AdminView struct {
	ID          int64                     `json:"id"`
	Title       i18n.Text                 `json:"title"`
	Description i18n.Text                 `json:"description"`
	Logo        *string                   `json:"logo"`
	Slug        string                    `json:"slug"`
	Categories  []projection.AdminSummary `json:"categories"`
	CreatedAt   time.Time                 `json:"createdAt"`
	UpdatedAt   time.Time                 `json:"updatedAt"`
}

// Project shapes a company for the requested view.
func Project(company *Company, opts projection.Options) any {
	if opts.IsAdmin() {
		return AdminView{
			ID:          company.ID,
			Title:       opts.Translations(company.Title),
			Description: company.Description.Clone(),
			Logo:        opts.AssetPtr(company.Logo),
			Slug:        company.Slug,
			Categories:  opts.AdminRefs(company.Categories),
			CreatedAt:   company.CreatedAt,
			UpdatedAt:   company.UpdatedAt,
		}
	}

	return PublicView{
		ID:          company.ID,
		Title:       opts.Resolve(company.Title),
		Description: opts.ResolvePtr(company.Description),
		Logo:        opts.AssetPtr(company.Logo),
		Slug:        company.Slug,
		Categories:  opts.PublicRefs(company.Categories),
		CreatedAt:   company.CreatedAt,
		UpdatedAt:   company.UpdatedAt,
	}
}

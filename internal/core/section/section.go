// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package section manages the content blocks that compose static pages.

A section belongs to a page identified by a slug-formatted key ("about",
"home-services"). Sections of a page are rendered by ascending Order.
*/
package section

import (
	"time"

	"github.com/taibuivan/gstone/internal/platform/projection"
	"github.com/taibuivan/gstone/pkg/i18n"
)

// Section is one content block of a page.
type Section struct {
	ID             int64
	Page           string
	Title          i18n.Text
	Content        i18n.Text
	Media          []string
	Order          int
	IsActive       bool
	AdditionalData map[string]any
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Filter narrows the section listing.
type Filter struct {
	Page     string
	IsActive *bool
}

// CreateInput is the payload for POST /sections.
// A nil Order appends the section after the last one of its page.
type CreateInput struct {
	Page           string         `json:"page"`
	Title          i18n.Text      `json:"title"`
	Content        i18n.Text      `json:"content"`
	Media          []string       `json:"media"`
	Order          *int           `json:"order"`
	IsActive       *bool          `json:"isActive"`
	AdditionalData map[string]any `json:"additionalData"`
}

// UpdateInput is the partial payload for PUT /sections/{id}.
// AdditionalData replaces the stored object when present.
type UpdateInput struct {
	Page           *string        `json:"page"`
	Title          i18n.Text      `json:"title"`
	Content        i18n.Text      `json:"content"`
	Media          *[]string      `json:"media"`
	Order          *int           `json:"order"`
	IsActive       *bool          `json:"isActive"`
	AdditionalData map[string]any `json:"additionalData"`
}

// Global field names for validation
const (
	FieldPage    = "page"
	FieldTitle   = "title"
	FieldContent = "content"
	FieldMedia   = "media"
	FieldOrder   = "order"
)

const (
	entityName    = "Section"
	maxPageLen    = 100
	maxTitleLen   = 255
	maxContentLen = 50000
	maxMedia      = 50
	maxOrder      = 1_000_000
)

// # Views

type PublicView struct {
	ID             int64          `json:"id"`
	Page           string         `json:"page"`
	Title          string         `json:"title"`
	Content        *string        `json:"content"`
	Media          []string       `json:"media"`
	Order          int            `json:"order"`
	IsActive       bool           `json:"isActive"`
	AdditionalData map[string]any `json:"additionalData"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

type AdminView struct {
	ID             int64          `json:"id"`
	Page           string         `json:"page"`
	Title          i18n.Text      `json:"title"`
	Content        i18n.Text      `json:"content"`
	Media          []string       `json:"media"`
	Order          int            `json:"order"`
	IsActive       bool           `json:"isActive"`
	AdditionalData map[string]any `json:"additionalData"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// Project shapes a section for the requested view. AdditionalData is passed through as stored.
func Project(section *Section, opts projection.Options) any {
	data := section.AdditionalData
	if data == nil {
		data = map[string]any{}
	}

	if opts.IsAdmin() {
		return AdminView{
			ID:             section.ID,
			Page:           section.Page,
			Title:          opts.Translations(section.Title),
			Content:        section.Content.Clone(),
			Media:          opts.Assets(section.Media),
			Order:          section.Order,
			IsActive:       section.IsActive,
			AdditionalData: data,
			CreatedAt:      section.CreatedAt,
			UpdatedAt:      section.UpdatedAt,
		}
	}

	return PublicView{
		ID:             section.ID,
		Page:           section.Page,
		Title:          opts.Resolve(section.Title),
		Content:        opts.ResolvePtr(section.Content),
		Media:          opts.Assets(section.Media),
		Order:          section.Order,
		IsActive:       section.IsActive,
		AdditionalData: data,
		CreatedAt:      section.CreatedAt,
		UpdatedAt:      section.UpdatedAt,
	}
}

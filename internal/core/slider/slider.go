// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slider manages the home page hero slides.
package slider

import (
	"time"

	"github.com/taibuivan/gstone/internal/platform/projection"
	"github.com/taibuivan/gstone/pkg/i18n"
)

// Slider is one hero slide. Slides are shown by ascending Order.
type Slider struct {
	ID        int64
	Title     i18n.Text
	Subtitle  i18n.Text
	ImageURL  string
	Order     int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter narrows the slide listing.
type Filter struct {
	IsActive *bool
}

// CreateInput is the payload for POST /sliders.
type CreateInput struct {
	Title    i18n.Text `json:"title"`
	Subtitle i18n.Text `json:"subtitle"`
	ImageURL string    `json:"imageUrl"`
	Order    *int      `json:"order"`
	IsActive *bool     `json:"isActive"`
}

// UpdateInput is the partial payload for PUT /sliders/{id}.
type UpdateInput struct {
	Title    i18n.Text `json:"title"`
	Subtitle i18n.Text `json:"subtitle"`
	ImageURL *string   `json:"imageUrl"`
	Order    *int      `json:"order"`
	IsActive *bool     `json:"isActive"`
}

// Global field names for validation
const (
	FieldTitle    = "title"
	FieldSubtitle = "subtitle"
	FieldImageURL = "imageUrl"
	FieldOrder    = "order"
)

const (
	entityName     = "Slider"
	maxTitleLen    = 255
	maxSubtitleLen = 500
	maxOrder       = 1_000_000
)

// # Views

type PublicView struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Subtitle  *string   `json:"subtitle"`
	ImageURL  *string   `json:"imageUrl"`
	Order     int       `json:"order"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AdminView struct {
	ID        int64     `json:"id"`
	Title     i18n.Text `json:"title"`
	Subtitle  i18n.Text `json:"subtitle"`
	ImageURL  *string   `json:"imageUrl"`
	Order     int       `json:"order"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Project shapes a slide for the requested view.
func Project(slider *Slider, opts projection.Options) any {
	if opts.IsAdmin() {
		return AdminView{
			ID:        slider.ID,
			Title:     opts.Translations(slider.Title),
			Subtitle:  slider.Subtitle.Clone(),
			ImageURL:  opts.Asset(slider.ImageURL),
			Order:     slider.Order,
			IsActive:  slider.IsActive,
			CreatedAt: slider.CreatedAt,
			UpdatedAt: slider.UpdatedAt,
		}
	}

	return PublicView{
		ID:        slider.ID,
		Title:     opts.Resolve(slider.Title),
		Subtitle:  opts.ResolvePtr(slider.Subtitle),
		ImageURL:  opts.Asset(slider.ImageURL),
		Order:     slider.Order,
		IsActive:  slider.IsActive,
		CreatedAt: slider.CreatedAt,
		UpdatedAt: slider.UpdatedAt,
	}
}

// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package gallery manages photo gallery categories and their items.

An item belongs to exactly one gallery category; deleting the category removes
its items. The category detail fetched by slug embeds its items, each projected
without the back-reference to the category.
*/
package gallery

import (
	"time"

	"github.com/taibuivan/gstone/internal/platform/projection"
	"github.com/taibuivan/gstone/pkg/i18n"
)

// Category is a gallery category. Items is only loaded by slug lookups.
type Category struct {
	ID        int64
	Title     i18n.Text
	Slug      string
	MainImage *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []*Item
}

// Item is a gallery entry with its category summary loaded.
type Item struct {
	ID                int64
	Title             i18n.Text
	Description       i18n.Text
	MainImage         *string
	ImageList         []string
	GalleryCategoryID int64
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Category *projection.Ref
}

// Sort is the ordering of the category listing.
type Sort string

const (
	SortDefault Sort = ""
	SortNewest  Sort = "newest"
	SortOldest  Sort = "oldest"
	SortAZ      Sort = "az"
	SortZA      Sort = "za"
)

// CategoryFilter narrows the category listing.
type CategoryFilter struct {
	IsActive *bool
	Sort     Sort
}

// ItemFilter narrows the item listing.
type ItemFilter struct {
	GalleryCategoryID *int64
	IsActive          *bool
}

// CreateCategoryInput is the payload for POST /gallery-categories.
type CreateCategoryInput struct {
	Title     i18n.Text `json:"title"`
	MainImage *string   `json:"mainImage"`
	IsActive  *bool     `json:"isActive"`
}

// UpdateCategoryInput is the partial payload for PUT /gallery-categories/{id}.
type UpdateCategoryInput struct {
	Title     i18n.Text `json:"title"`
	MainImage *string   `json:"mainImage"`
	IsActive  *bool     `json:"isActive"`
}

// CreateItemInput is the payload for POST /gallery-items.
type CreateItemInput struct {
	Title             i18n.Text `json:"title"`
	Description       i18n.Text `json:"description"`
	MainImage         *string   `json:"mainImage"`
	ImageList         []string  `json:"imageList"`
	GalleryCategoryID int64     `json:"galleryCategoryId"`
	IsActive          *bool     `json:"isActive"`
}

// UpdateItemInput is the partial payload for PUT /gallery-items/{id}.
type UpdateItemInput struct {
	Title             i18n.Text `json:"title"`
	Description       i18n.Text `json:"description"`
	MainImage         *string   `json:"mainImage"`
	ImageList         *[]string `json:"imageList"`
	GalleryCategoryID *int64    `json:"galleryCategoryId"`
	IsActive          *bool     `json:"isActive"`
}

// Global field names for validation
const (
	FieldTitle             = "title"
	FieldDescription       = "description"
	FieldMainImage         = "mainImage"
	FieldImageList         = "imageList"
	FieldGalleryCategoryID = "galleryCategoryId"
	FieldSort              = "sort"
)

const (
	categoryEntity = "Gallery category"
	itemEntity     = "Gallery item"

	maxTitleLen       = 255
	maxDescriptionLen = 5000
	maxImages         = 100
)

// # Category Views

type CategoryPublicView struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	MainImage *string   `json:"mainImage"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CategoryAdminView struct {
	ID        int64     `json:"id"`
	Title     i18n.Text `json:"title"`
	Slug      string    `json:"slug"`
	MainImage *string   `json:"mainImage"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryPublicDetail is the public category view with its items embedded.
type CategoryPublicDetail struct {
	CategoryPublicView
	Items []ItemPublicView `json:"items"`
}

// CategoryAdminDetail is the admin category view with its items embedded.
type CategoryAdminDetail struct {
	CategoryAdminView
	Items []ItemAdminView `json:"items"`
}

// ProjectCategory shapes a gallery category for the requested view.
func ProjectCategory(category *Category, opts projection.Options) any {
	if opts.IsAdmin() {
		return categoryAdmin(category, opts)
	}
	return categoryPublic(category, opts)
}

/*
ProjectCategoryDetail shapes a category together with its items.

Items are projected without their category summary.
*/
func ProjectCategoryDetail(category *Category, opts projection.Options) any {
	if opts.IsAdmin() {
		detail := CategoryAdminDetail{CategoryAdminView: categoryAdmin(category, opts), Items: []ItemAdminView{}}
		for _, item := range category.Items {
			detail.Items = append(detail.Items, itemAdmin(item, opts, false))
		}
		return detail
	}

	detail := CategoryPublicDetail{CategoryPublicView: categoryPublic(category, opts), Items: []ItemPublicView{}}
	for _, item := range category.Items {
		detail.Items = append(detail.Items, itemPublic(item, opts, false))
	}
	return detail
}

func categoryPublic(category *Category, opts projection.Options) CategoryPublicView {
	return CategoryPublicView{
		ID:        category.ID,
		Title:     opts.Resolve(category.Title),
		Slug:      category.Slug,
		MainImage: opts.AssetPtr(category.MainImage),
		IsActive:  category.IsActive,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

func categoryAdmin(category *Category, opts projection.Options) CategoryAdminView {
	return CategoryAdminView{
		ID:        category.ID,
		Title:     opts.Translations(category.Title),
		Slug:      category.Slug,
		MainImage: opts.AssetPtr(category.MainImage),
		IsActive:  category.IsActive,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// # Item Views

type ItemPublicView struct {
	ID              int64                     `json:"id"`
	Title           string                    `json:"title"`
	Description     *string                   `json:"description"`
	MainImage       *string                   `json:"mainImage"`
	ImageList       []string                  `json:"imageList"`
	IsActive        bool                      `json:"isActive"`
	GalleryCategory *projection.PublicSummary `json:"galleryCategory,omitempty"`
	CreatedAt       time.Time                 `json:"createdAt"`
	UpdatedAt       time.Time                 `json:"updatedAt"`
}

type ItemAdminView struct {
	ID              int64                    `json:"id"`
	Title           i18n.Text                `json:"title"`
	Description     i18n.Text                `json:"description"`
	MainImage       *string                  `json:"mainImage"`
	ImageList       []string                 `json:"imageList"`
	IsActive        bool                     `json:"isActive"`
	GalleryCategory *projection.AdminSummary `json:"galleryCategory,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
	UpdatedAt       time.Time                `json:"updatedAt"`
}

// ProjectItem shapes a gallery item with its category summary.
func ProjectItem(item *Item, opts projection.Options) any {
	if opts.IsAdmin() {
		return itemAdmin(item, opts, true)
	}
	return itemPublic(item, opts, true)
}

func itemPublic(item *Item, opts projection.Options, withCategory bool) ItemPublicView {
	view := ItemPublicView{
		ID:          item.ID,
		Title:       opts.Resolve(item.Title),
		Description: opts.ResolvePtr(item.Description),
		MainImage:   opts.AssetPtr(item.MainImage),
		ImageList:   opts.Assets(item.ImageList),
		IsActive:    item.IsActive,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
	if withCategory {
		view.GalleryCategory = opts.PublicRefPtr(item.Category)
	}
	return view
}

func itemAdmin(item *Item, opts projection.Options, withCategory bool) ItemAdminView {
	view := ItemAdminView{
		ID:          item.ID,
		Title:       opts.Translations(item.Title),
		Description: item.Description.Clone(),
		MainImage:   opts.AssetPtr(item.MainImage),
		ImageList:   opts.Assets(item.ImageList),
		IsActive:    item.IsActive,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
	if withCategory {
		view.GalleryCategory = opts.AdminRefPtr(item.Category)
	}
	return view
}

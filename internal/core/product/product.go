// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package product manages catalogue products.

Every product belongs to exactly one category and one company. Images and the
detail sheet are asset references produced by the upload service.
*/
package product

import (
	"time"

	"github.com/taibuivan/gstone/internal/platform/projection"
	"github.com/taibuivan/gstone/pkg/i18n"
)

// Product is a catalogue product with its category and company loaded.
type Product struct {
	ID          int64
	Title       i18n.Text
	Slug        string
	Description i18n.Text
	MainImage   *string
	ImageList   []string
	DetailPDF   *string
	CategoryID  int64
	CompanyID   int64
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *projection.Ref
	Company  *projection.Ref
}

// Sort is the ordering of the paginated product listing.
type Sort string

const (
	SortNewest Sort = "newest"
	SortOldest Sort = "oldest"
	SortAZ     Sort = "az"
	SortZA     Sort = "za"
)

// Filter narrows the paginated listing.
type Filter struct {
	CompanyID  *int64
	CategoryID *int64
	IsActive   *bool
	Sort       Sort
}

// SearchFilter drives GET /products/search.
type SearchFilter struct {
	Title      string
	CompanyID  *int64
	CategoryID *int64
}

// CreateInput is the payload for POST /products.
type CreateInput struct {
	Title       i18n.Text `json:"title"`
	Description i18n.Text `json:"description"`
	MainImage   *string   `json:"mainImage"`
	ImageList   []string  `json:"imageList"`
	DetailPDF   *string   `json:"detailPdf"`
	CategoryID  int64     `json:"categoryId"`
	CompanyID   int64     `json:"companyId"`
	IsActive    *bool     `json:"isActive"`
}

// UpdateInput is the partial payload for PUT /products/{id}.
type UpdateInput struct {
	Title       i18n.Text `json:"title"`
	Description i18n.Text `json:"description"`
	MainImage   *string   `json:"mainImage"`
	ImageList   *[]string `json:"imageList"`
	DetailPDF   *string   `json:"detailPdf"`
	CategoryID  *int64    `json:"categoryId"`
	CompanyID   *int64    `json:"companyId"`
	IsActive    *bool     `json:"isActive"`
}

// Global field names for validation
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldMainImage   = "mainImage"
	FieldImageList   = "imageList"
	FieldDetailPDF   = "detailPdf"
	FieldCategoryID  = "categoryId"
	FieldCompanyID   = "companyId"
	FieldSort        = "sort"
)

const (
	maxTitleLen       = 255
	maxDescriptionLen = 10000
	maxImages         = 30
	searchLimit       = 50
)

// # Views

type PublicView struct {
	ID          int64                     `json:"id"`
	Title       string                    `json:"title"`
	Slug        string                    `json:"slug"`
	Description *string                   `json:"description"`
	MainImage   *string                   `json:"mainImage"`
	ImageList   []string                  `json:"imageList"`
	DetailPDF   *string                   `json:"detailPdf"`
	IsActive    bool                      `json:"isActive"`
	Category    *projection.PublicSummary `json:"category"`
	Company     *projection.PublicSummary `json:"company"`
	CreatedAt   time.Time                 `json:"createdAt"`
	UpdatedAt   time.Time                 `json:"updatedAt"`
}

type AdminView struct {
	ID          int64                    `json:"id"`
	Title       i18n.Text                `json:"title"`
	Slug        string                   `json:"slug"`
	Description i18n.Text                `json:"description"`
	MainImage   *string                  `json:"mainImage"`
	ImageList   []string                 `json:"imageList"`
	DetailPDF   *string                  `json:"detailPdf"`
	IsActive    bool                     `json:"isActive"`
	Category    *projection.AdminSummary `json:"category"`
	Company     *projection.AdminSummary `json:"company"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}

// Project shapes a product for the requested view.
func Project(product *Product, opts projection.Options) any {
	if opts.IsAdmin() {
		return AdminView{
			ID:          product.ID,
			Title:       opts.Translations(product.Title),
			Slug:        product.Slug,
			Description: product.Description.Clone(),
			MainImage:   opts.AssetPtr(product.MainImage),
			ImageList:   opts.Assets(product.ImageList),
			DetailPDF:   opts.AssetPtr(product.DetailPDF),
			IsActive:    product.IsActive,
			Category:    opts.AdminRefPtr(product.Category),
			Company:     opts.AdminRefPtr(product.Company),
			CreatedAt:   product.CreatedAt,
			UpdatedAt:   product.UpdatedAt,
		}
	}

	return PublicView{
		ID:          product.ID,
		Title:       opts.Resolve(product.Title),
		Slug:        product.Slug,
		Description: opts.ResolvePtr(product.Description),
		MainImage:   opts.AssetPtr(product.MainImage),
		ImageList:   opts.Assets(product.ImageList),
		DetailPDF:   opts.AssetPtr(product.DetailPDF),
		IsActive:    product.IsActive,
		Category:    opts.PublicRefPtr(product.Category),
		Company:     opts.PublicRefPtr(product.Company),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

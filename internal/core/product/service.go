// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"log/slog"

	"github.com/taibuivan/gstone/internal/platform/apperr"
	"github.com/taibuivan/gstone/internal/platform/validate"
	"github.com/taibuivan/gstone/pkg/i18n"
	"github.com/taibuivan/gstone/pkg/pointer"
	"github.com/taibuivan/gstone/pkg/slug"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

/*
ListProducts returns one page of products.

Parameters:
  - filter: Filter (Owner filters, active flag and sort key)
  - limit, offset: int (Page window)

Returns:
  - []*Product: The page
  - int: Total number of matches
  - error: VALIDATION_ERROR for an unknown sort key
*/
func (service *Service) ListProducts(context context.Context, filter Filter, limit, offset int) ([]*Product, int, error) {
	if filter.Sort == "" {
		filter.Sort = SortNewest
	}

	validator := &validate.Validator{}
	validator.OneOf(FieldSort, string(filter.Sort),
		string(SortNewest), string(SortOldest), string(SortAZ), string(SortZA))
	if err := validator.Err(); err != nil {
		return nil, 0, err
	}

	return service.repo.ListProducts(context, filter, limit, offset)
}

// SearchProducts returns at most a fixed number of title matches.
func (service *Service) SearchProducts(context context.Context, filter SearchFilter) ([]*Product, error) {
	return service.repo.SearchProducts(context, filter, searchLimit)
}

func (service *Service) GetProduct(context context.Context, id int64) (*Product, error) {
	return service.repo.GetProduct(context, id)
}

func (service *Service) GetProductBySlug(context context.Context, slug string) (*Product, error) {
	return service.repo.GetProductBySlug(context, slug)
}

/*
CreateProduct validates the payload, checks the owning category and company and
persists the product.

Returns:
  - *Product: The stored product with its summaries loaded
  - error: VALIDATION_ERROR, NOT_FOUND for a missing owner, CONFLICT on a duplicate slug
*/
func (service *Service) CreateProduct(context context.Context, input CreateInput) (*Product, error) {
	product := &Product{
		Title:       input.Title,
		Slug:        slug.From(input.Title.Primary()),
		Description: input.Description,
		MainImage:   pointer.NonBlank(input.MainImage),
		ImageList:   input.ImageList,
		DetailPDF:   pointer.NonBlank(input.DetailPDF),
		CategoryID:  input.CategoryID,
		CompanyID:   input.CompanyID,
		IsActive:    pointer.Fallback(input.IsActive, true),
	}
	if product.ImageList == nil {
		product.ImageList = []string{}
	}

	validator := &validate.Validator{}
	validateProduct(validator, product)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.ensureOwners(context, product.CategoryID, product.CompanyID); err != nil {
		return nil, err
	}

	if err := service.repo.CreateProduct(context, product); err != nil {
		return nil, err
	}

	service.logger.Info("product_created",
		slog.Int64("product_id", product.ID),
		slog.String("slug", product.Slug),
	)
	return service.repo.GetProduct(context, product.ID)
}

// UpdateProduct applies a partial update; the slug follows the Azerbaijani title.
func (service *Service) UpdateProduct(context context.Context, id int64, input UpdateInput) (*Product, error) {
	product, err := service.repo.GetProduct(context, id)
	if err != nil {
		return nil, err
	}

	previous := product.Title.Primary()
	if input.Title != nil {
		product.Title = product.Title.Merge(input.Title)
	}
	if input.Description != nil {
		product.Description = product.Description.Merge(input.Description)
	}
	if input.MainImage != nil {
		product.MainImage = pointer.NonBlank(input.MainImage)
	}
	if input.ImageList != nil {
		product.ImageList = append([]string{}, *input.ImageList...)
	}
	if input.DetailPDF != nil {
		product.DetailPDF = pointer.NonBlank(input.DetailPDF)
	}
	if input.CategoryID != nil {
		product.CategoryID = *input.CategoryID
	}
	if input.CompanyID != nil {
		product.CompanyID = *input.CompanyID
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	newSlug, regenerated := slug.Regenerate(previous, product.Title.Primary(), product.Slug)
	product.Slug = newSlug

	validator := &validate.Validator{}
	validateProduct(validator, product)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.ensureOwners(context, product.CategoryID, product.CompanyID); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateProduct(context, product); err != nil {
		return nil, err
	}

	service.logger.Info("product_updated",
		slog.Int64("product_id", id),
		slog.Bool("slug_regenerated", regenerated),
	)
	return service.repo.GetProduct(context, id)
}

func (service *Service) DeleteProduct(context context.Context, id int64) error {
	if err := service.repo.DeleteProduct(context, id); err != nil {
		return err
	}

	service.logger.Warn("product_deleted", slog.Int64("product_id", id))
	return nil
}

// ensureOwners fails with 404 when the category or company does not exist.
func (service *Service) ensureOwners(context context.Context, categoryID, companyID int64) error {
	found, err := service.repo.CategoryExists(context, categoryID)
	if err != nil {
		return err
	}
	if !found {
		return apperr.NotFound("Category")
	}

	found, err = service.repo.CompanyExists(context, companyID)
	if err != nil {
		return err
	}
	if !found {
		return apperr.NotFound("Company")
	}
	return nil
}

// # Validation

func validateProduct(validator *validate.Validator, product *Product) {
	validator.LocalizedText(FieldTitle, product.Title, true, maxTitleLen)
	validator.Custom(FieldTitle+"."+string(i18n.LangAZ),
		product.Title.Primary() != "" && product.Slug == "",
		"Must contain at least one letter or digit")
	validator.LocalizedText(FieldDescription, product.Description, false, maxDescriptionLen)

	if product.MainImage != nil {
		validator.AssetRef(FieldMainImage, *product.MainImage)
	}
	if product.DetailPDF != nil {
		validator.AssetRef(FieldDetailPDF, *product.DetailPDF)
	}

	validator.Custom(FieldImageList, len(product.ImageList) > maxImages, "Too many images")
	for _, image := range product.ImageList {
		validator.AssetRef(FieldImageList, image)
	}

	validator.Positive(FieldCategoryID, product.CategoryID)
	validator.Positive(FieldCompanyID, product.CompanyID)
}

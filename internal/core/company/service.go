// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package company

import (
	"context"
	"log/slog"

	"github.com/taibuivan/gstone/internal/platform/apperr"
	"github.com/taibuivan/gstone/internal/platform/validate"
	"github.com/taibuivan/gstone/internal/upload"
	"github.com/taibuivan/gstone/pkg/i18n"
	"github.com/taibuivan/gstone/pkg/pointer"
	"github.com/taibuivan/gstone/pkg/slug"
)

// Uploader stores logo images. Satisfied by [upload.Service].
type Uploader interface {
	Store(context context.Context, kind upload.Kind, file upload.File) (*upload.Result, error)
}

type Service struct {
	repo     Repository
	uploader Uploader
	logger   *slog.Logger
}

func NewService(repo Repository, uploader Uploader, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		uploader: uploader,
		logger:   logger,
	}
}

func (service *Service) ListCompanies(context context.Context, filter Filter) ([]*Company, error) {
	return service.repo.ListCompanies(context, filter)
}

func (service *Service) GetCompany(context context.Context, id int64) (*Company, error) {
	return service.repo.GetCompany(context, id)
}

func (service *Service) GetCompanyBySlug(context context.Context, slug string) (*Company, error) {
	return service.repo.GetCompanyBySlug(context, slug)
}

/*
CreateCompany validates the payload, checks every category id and persists the company.

Returns:
  - *Company: The stored company with categories loaded
  - error: VALIDATION_ERROR, NOT_FOUND for unknown category ids, CONFLICT on a duplicate slug
*/
func (service *Service) CreateCompany(context context.Context, input CreateInput) (*Company, error) {
	company := &Company{
		Title:       input.Title,
		Description: input.Description,
		Logo:        pointer.NonBlank(input.Logo),
		Slug:        slug.From(input.Title.Primary()),
	}

	validator := &validate.Validator{}
	validateCompany(validator, company)
	validateIDs(validator, input.CategoryIDs)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.ensureCategories(context, input.CategoryIDs); err != nil {
		return nil, err
	}

	if err := service.repo.CreateCompany(context, company, input.CategoryIDs); err != nil {
		return nil, err
	}

	service.logger.Info("company_created",
		slog.Int64("company_id", company.ID),
		slog.String("slug", company.Slug),
	)
	return service.repo.GetCompany(context, company.ID)
}

// UpdateCompany applies a partial update; the slug follows the Azerbaijani title.
func (service *Service) UpdateCompany(context context.Context, id int64, input UpdateInput) (*Company, error) {
	company, err := service.repo.GetCompany(context, id)
	if err != nil {
		return nil, err
	}

	previous := company.Title.Primary()
	if input.Title != nil {
		company.Title = company.Title.Merge(input.Title)
	}
	if input.Description != nil {
		company.Description = company.Description.Merge(input.Description)
	}
	if input.Logo != nil {
		company.Logo = pointer.NonBlank(input.Logo)
	}

	newSlug, regenerated := slug.Regenerate(previous, company.Title.Primary(), company.Slug)
	company.Slug = newSlug

	var categoryIDs []int64
	if input.CategoryIDs != nil {
		categoryIDs = append([]int64{}, *input.CategoryIDs...)
	}

	validator := &validate.Validator{}
	validateCompany(validator, company)
	validateIDs(validator, categoryIDs)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.ensureCategories(context, categoryIDs); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateCompany(context, company, categoryIDs); err != nil {
		return nil, err
	}

	service.logger.Info("company_updated",
		slog.Int64("company_id", id),
		slog.Bool("slug_regenerated", regenerated),
	)
	return service.repo.GetCompany(context, id)
}

/*
UploadLogo stores an image and makes it the company's logo.

Returns:
  - *Company: The updated company
  - error: NOT_FOUND, upload validation errors or storage failures
*/
func (service *Service) UploadLogo(context context.Context, id int64, file upload.File) (*Company, error) {
	if _, err := service.repo.GetCompany(context, id); err != nil {
		return nil, err
	}

	result, err := service.uploader.Store(context, upload.KindImage, file)
	if err != nil {
		return nil, err
	}

	if err := service.repo.UpdateLogo(context, id, result.URL); err != nil {
		return nil, err
	}

	service.logger.Info("company_logo_updated",
		slog.Int64("company_id", id),
		slog.String("logo", result.URL),
	)
	return service.repo.GetCompany(context, id)
}

func (service *Service) DeleteCompany(context context.Context, id int64) error {
	if err := service.repo.DeleteCompany(context, id); err != nil {
		return err
	}

	service.logger.Warn("company_deleted", slog.Int64("company_id", id))
	return nil
}

// ensureCategories fails with 404 when any id does not match a category.
func (service *Service) ensureCategories(context context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	missing, err := service.repo.MissingCategoryIDs(context, ids)
	if err != nil {
		return err
	}

	if len(missing) > 0 {
		notFound := apperr.NotFound("Category")
		notFound.Message = "Some category ids were not found"
		return notFound
	}
	return nil
}

// # Validation

func validateCompany(validator *validate.Validator, company *Company) {
	validator.LocalizedText(FieldTitle, company.Title, true, maxTitleLen)
	validator.Custom(FieldTitle+"."+string(i18n.LangAZ),
		company.Title.Primary() != "" && company.Slug == "",
		"Must contain at least one letter or digit")
	validator.LocalizedText(FieldDescription, company.Description, false, maxDescriptionLen)

	if company.Logo != nil {
		validator.AssetRef(FieldLogo, *company.Logo)
	}
}

func validateIDs(validator *validate.Validator, ids []int64) {
	for _, id := range ids {
		validator.Positive(FieldCategoryIDs, id)
	}
}

// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"log/slog"

	"github.com/taibuivan/gstone/internal/platform/validate"
	"github.com/taibuivan/gstone/pkg/i18n"
	"github.com/taibuivan/gstone/pkg/slug"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListCategories(context context.Context, filter Filter) ([]*Category, error) {
	return service.repo.ListCategories(context, filter)
}

func (service *Service) GetCategory(context context.Context, id int64) (*Category, error) {
	return service.repo.GetCategory(context, id)
}

func (service *Service) GetCategoryBySlug(context context.Context, slug string) (*Category, error) {
	return service.repo.GetCategoryBySlug(context, slug)
}

/*
CreateCategory validates the payload, derives the slug from the Azerbaijani
title and persists the category with its company links.

Returns:
  - *Category: The stored category with relations loaded
  - error: VALIDATION_ERROR, CONFLICT on a duplicate slug, or storage errors
*/
func (service *Service) CreateCategory(context context.Context, input CreateInput) (*Category, error) {
	category := &Category{
		Title:    input.Title,
		Slug:     slug.From(input.Title.Primary()),
		ParentID: input.ParentID,
		IsActive: true,
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	validator := &validate.Validator{}
	validateCategory(validator, category)
	validateCompanyIDs(validator, input.CompanyIDs)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.CreateCategory(context, category, input.CompanyIDs); err != nil {
		return nil, err
	}

	service.logger.Info("category_created",
		slog.Int64("category_id", category.ID),
		slog.String("slug", category.Slug),
	)
	return service.repo.GetCategory(context, category.ID)
}

/*
UpdateCategory applies a partial update.

Translations in the payload are merged into the stored title. The slug is
regenerated only when the Azerbaijani title actually changes.
*/
func (service *Service) UpdateCategory(context context.Context, id int64, input UpdateInput) (*Category, error) {
	category, err := service.repo.GetCategory(context, id)
	if err != nil {
		return nil, err
	}

	previous := category.Title.Primary()
	if input.Title != nil {
		category.Title = category.Title.Merge(input.Title)
	}

	newSlug, regenerated := slug.Regenerate(previous, category.Title.Primary(), category.Slug)
	category.Slug = newSlug

	if input.ParentID.Set {
		category.ParentID = input.ParentID.Value
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	var companyIDs []int64
	if input.CompanyIDs != nil {
		companyIDs = append([]int64{}, *input.CompanyIDs...)
	}

	validator := &validate.Validator{}
	validateCategory(validator, category)
	validateCompanyIDs(validator, companyIDs)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateCategory(context, category, companyIDs); err != nil {
		return nil, err
	}

	service.logger.Info("category_updated",
		slog.Int64("category_id", id),
		slog.Bool("slug_regenerated", regenerated),
	)
	return service.repo.GetCategory(context, id)
}

func (service *Service) DeleteCategory(context context.Context, id int64) error {
	if err := service.repo.DeleteCategory(context, id); err != nil {
		return err
	}

	service.logger.Warn("category_deleted", slog.Int64("category_id", id))
	return nil
}

// # Validation

func validateCategory(validator *validate.Validator, category *Category) {
	validator.LocalizedText(FieldTitle, category.Title, true, maxTitleLen)
	validator.Custom(FieldTitle+"."+string(i18n.LangAZ),
		category.Title.Primary() != "" && category.Slug == "",
		"Must contain at least one letter or digit")

	if category.ParentID != nil {
		validator.Positive(FieldParentID, *category.ParentID)
		validator.Custom(FieldParentID, category.ID != 0 && *category.ParentID == category.ID,
			"A category cannot be its own parent")
	}
}

func validateCompanyIDs(validator *validate.Validator, ids []int64) {
	for _, id := range ids {
		validator.Positive(FieldCompanyIDs, id)
	}
}

// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery

import (
	"context"
	"log/slog"

	"github.com/taibuivan/gstone/internal/platform/validate"
	"github.com/taibuivan/gstone/pkg/i18n"
	"github.com/taibuivan/gstone/pkg/pointer"
	"github.com/taibuivan/gstone/pkg/slug"
)

// # Service Layer

// Service orchestrates gallery categories and their items.
type Service struct {
	categoryRepo CategoryRepository
	itemRepo     ItemRepository
	logger       *slog.Logger
}

func NewService(categoryRepo CategoryRepository, itemRepo ItemRepository, logger *slog.Logger) *Service {
	return &Service{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		logger:       logger,
	}
}

// # Category Lookups

func (service *Service) ListCategories(context context.Context, filter CategoryFilter) ([]*Category, error) {
	validator := &validate.Validator{}
	if filter.Sort != SortDefault {
		validator.OneOf(FieldSort, string(filter.Sort),
			string(SortNewest), string(SortOldest), string(SortAZ), string(SortZA))
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.categoryRepo.ListCategories(context, filter)
}

func (service *Service) GetCategory(context context.Context, id int64) (*Category, error) {
	return service.categoryRepo.GetCategory(context, id)
}

// GetCategoryBySlug returns the category with its items embedded.
func (service *Service) GetCategoryBySlug(context context.Context, slug string) (*Category, error) {
	return service.categoryRepo.GetCategoryBySlug(context, slug)
}

// # Category Mutations

func (service *Service) CreateCategory(context context.Context, input CreateCategoryInput) (*Category, error) {
	category := &Category{
		Title:     input.Title,
		Slug:      slug.From(input.Title.Primary()),
		MainImage: pointer.NonBlank(input.MainImage),
		IsActive:  pointer.Fallback(input.IsActive, true),
	}

	validator := &validate.Validator{}
	validateCategory(validator, category)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.categoryRepo.CreateCategory(context, category); err != nil {
		return nil, err
	}

	service.logger.Info("gallery_category_created",
		slog.Int64("gallery_category_id", category.ID),
		slog.String("slug", category.Slug),
	)
	return category, nil
}

// UpdateCategory applies a partial update; the slug follows the Azerbaijani title.
func (service *Service) UpdateCategory(context context.Context, id int64, input UpdateCategoryInput) (*Category, error) {
	category, err := service.categoryRepo.GetCategory(context, id)
	if err != nil {
		return nil, err
	}

	previous := category.Title.Primary()
	if input.Title != nil {
		category.Title = category.Title.Merge(input.Title)
	}
	if input.MainImage != nil {
		category.MainImage = pointer.NonBlank(input.MainImage)
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	newSlug, regenerated := slug.Regenerate(previous, category.Title.Primary(), category.Slug)
	category.Slug = newSlug

	validator := &validate.Validator{}
	validateCategory(validator, category)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.categoryRepo.UpdateCategory(context, category); err != nil {
		return nil, err
	}

	service.logger.Info("gallery_category_updated",
		slog.Int64("gallery_category_id", id),
		slog.Bool("slug_regenerated", regenerated),
	)
	return category, nil
}

// DeleteCategory removes the category together with its items.
func (service *Service) DeleteCategory(context context.Context, id int64) error {
	if err := service.categoryRepo.DeleteCategory(context, id); err != nil {
		return err
	}

	service.logger.Warn("gallery_category_deleted", slog.Int64("gallery_category_id", id))
	return nil
}

// # Validation

func validateCategory(validator *validate.Validator, category *Category) {
	validator.LocalizedText(FieldTitle, category.Title, true, maxTitleLen)
	validator.Custom(FieldTitle+"."+string(i18n.LangAZ),
		category.Title.Primary() != "" && category.Slug == "",
		"Must contain at least one letter or digit")

	if category.MainImage != nil {
		validator.AssetRef(FieldMainImage, *category.MainImage)
	}
}

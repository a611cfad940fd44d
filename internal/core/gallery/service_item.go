// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery

import (
	"context"
	"log/slog"

	"github.com/taibuivan/gstone/internal/platform/validate"
	"github.com/taibuivan/gstone/pkg/pointer"
)

// # Item Lookups

func (service *Service) ListItems(context context.Context, filter ItemFilter) ([]*Item, error) {
	return service.itemRepo.ListItems(context, filter)
}

func (service *Service) GetItem(context context.Context, id int64) (*Item, error) {
	return service.itemRepo.GetItem(context, id)
}

// # Item Mutations

/*
CreateItem validates the payload and stores the item under an existing category.

Returns:
  - *Item: The stored item with its category summary
  - error: VALIDATION_ERROR, or NOT_FOUND when the gallery category does not exist
*/
func (service *Service) CreateItem(context context.Context, input CreateItemInput) (*Item, error) {
	item := &Item{
		Title:             input.Title,
		Description:       input.Description,
		MainImage:         pointer.NonBlank(input.MainImage),
		ImageList:         input.ImageList,
		GalleryCategoryID: input.GalleryCategoryID,
		IsActive:          pointer.Fallback(input.IsActive, true),
	}
	if item.ImageList == nil {
		item.ImageList = []string{}
	}

	validator := &validate.Validator{}
	validateItem(validator, item)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if _, err := service.categoryRepo.GetCategory(context, item.GalleryCategoryID); err != nil {
		return nil, err
	}

	if err := service.itemRepo.CreateItem(context, item); err != nil {
		return nil, err
	}

	service.logger.Info("gallery_item_created",
		slog.Int64("gallery_item_id", item.ID),
		slog.Int64("gallery_category_id", item.GalleryCategoryID),
	)
	return service.itemRepo.GetItem(context, item.ID)
}

// UpdateItem applies a partial update. Moving an item requires the target category to exist.
func (service *Service) UpdateItem(context context.Context, id int64, input UpdateItemInput) (*Item, error) {
	item, err := service.itemRepo.GetItem(context, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		item.Title = item.Title.Merge(input.Title)
	}
	if input.Description != nil {
		item.Description = item.Description.Merge(input.Description)
	}
	if input.MainImage != nil {
		item.MainImage = pointer.NonBlank(input.MainImage)
	}
	if input.ImageList != nil {
		item.ImageList = append([]string{}, *input.ImageList...)
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}
	moved := input.GalleryCategoryID != nil && *input.GalleryCategoryID != item.GalleryCategoryID
	if input.GalleryCategoryID != nil {
		item.GalleryCategoryID = *input.GalleryCategoryID
	}

	validator := &validate.Validator{}
	validateItem(validator, item)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if moved {
		if _, err := service.categoryRepo.GetCategory(context, item.GalleryCategoryID); err != nil {
			return nil, err
		}
	}

	if err := service.itemRepo.UpdateItem(context, item); err != nil {
		return nil, err
	}

	service.logger.Info("gallery_item_updated",
		slog.Int64("gallery_item_id", id),
		slog.Bool("moved", moved),
	)
	return service.itemRepo.GetItem(context, id)
}

func (service *Service) DeleteItem(context context.Context, id int64) error {
	if err := service.itemRepo.DeleteItem(context, id); err != nil {
		return err
	}

	service.logger.Warn("gallery_item_deleted", slog.Int64("gallery_item_id", id))
	return nil
}

func validateItem(validator *validate.Validator, item *Item) {
	validator.LocalizedText(FieldTitle, item.Title, true, maxTitleLen)
	validator.LocalizedText(FieldDescription, item.Description, false, maxDescriptionLen)

	if item.MainImage != nil {
		validator.AssetRef(FieldMainImage, *item.MainImage)
	}

	validator.Custom(FieldImageList, len(item.ImageList) > maxImages, "Too many images")
	for _, image := range item.ImageList {
		validator.AssetRef(FieldImageList, image)
	}

	validator.Positive(FieldGalleryCategoryID, item.GalleryCategoryID)
}

// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/gstone/internal/platform/validate"
	"github.com/taibuivan/gstone/pkg/pointer"
	"github.com/taibuivan/gstone/pkg/slice"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) ListSections(context context.Context, filter Filter) ([]*Section, error) {
	filter.Page = strings.TrimSpace(filter.Page)
	return service.repo.ListSections(context, filter)
}

func (service *Service) GetSection(context context.Context, id int64) (*Section, error) {
	return service.repo.GetSection(context, id)
}

/*
CreateSection stores a block on its page.

When no order is given the section is placed after the last one of the page,
so a page built by successive POSTs keeps insertion order.
*/
func (service *Service) CreateSection(context context.Context, input CreateInput) (*Section, error) {
	section := &Section{
		Page:           strings.TrimSpace(input.Page),
		Title:          input.Title,
		Content:        input.Content,
		Media:          trimRefs(input.Media),
		IsActive:       pointer.Fallback(input.IsActive, true),
		AdditionalData: orEmpty(input.AdditionalData),
	}

	validator := &validate.Validator{}
	validateSection(validator, section)
	if input.Order != nil {
		validator.Range(FieldOrder, *input.Order, 0, maxOrder)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.Order != nil {
		section.Order = *input.Order
	} else {
		next, err := service.repo.NextOrder(context, section.Page)
		if err != nil {
			return nil, err
		}
		section.Order = next
	}

	if err := service.repo.CreateSection(context, section); err != nil {
		return nil, err
	}

	service.logger.Info("section_created",
		slog.Int64("section_id", section.ID),
		slog.String("page", section.Page),
		slog.Int("order", section.Order),
	)
	return section, nil
}

func (service *Service) UpdateSection(context context.Context, id int64, input UpdateInput) (*Section, error) {
	section, err := service.repo.GetSection(context, id)
	if err != nil {
		return nil, err
	}

	if input.Page != nil {
		section.Page = strings.TrimSpace(*input.Page)
	}
	if input.Title != nil {
		section.Title = section.Title.Merge(input.Title)
	}
	if input.Content != nil {
		section.Content = section.Content.Merge(input.Content)
	}
	if input.Media != nil {
		section.Media = trimRefs(*input.Media)
	}
	if input.Order != nil {
		section.Order = *input.Order
	}
	if input.IsActive != nil {
		section.IsActive = *input.IsActive
	}
	if input.AdditionalData != nil {
		section.AdditionalData = input.AdditionalData
	}

	validator := &validate.Validator{}
	validateSection(validator, section)
	validator.Range(FieldOrder, section.Order, 0, maxOrder)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateSection(context, section); err != nil {
		return nil, err
	}

	service.logger.Info("section_updated", slog.Int64("section_id", id))
	return section, nil
}

func (service *Service) DeleteSection(context context.Context, id int64) error {
	if err := service.repo.DeleteSection(context, id); err != nil {
		return err
	}

	service.logger.Warn("section_deleted", slog.Int64("section_id", id))
	return nil
}

// # Validation

func validateSection(validator *validate.Validator, section *Section) {
	validator.Required(FieldPage, section.Page)
	if section.Page != "" {
		validator.MaxLen(FieldPage, section.Page, maxPageLen).Slug(FieldPage, section.Page)
	}

	validator.LocalizedText(FieldTitle, section.Title, false, maxTitleLen)
	validator.LocalizedText(FieldContent, section.Content, false, maxContentLen)

	validator.Custom(FieldMedia, len(section.Media) > maxMedia, "Too many media files")
	for _, ref := range section.Media {
		validator.AssetRef(FieldMedia, ref)
	}
}

func trimRefs(refs []string) []string {
	return slice.FilterMap(refs, func(ref string) (string, bool) {
		ref = strings.TrimSpace(ref)
		return ref, ref != ""
	})
}

func orEmpty(data map[string]any) map[string]any {
	if data == nil {
		return map[string]any{}
	}
	return data
}

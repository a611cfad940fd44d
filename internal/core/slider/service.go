// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slider

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/gstone/internal/platform/validate"
	"github.com/taibuivan/gstone/pkg/pointer"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) ListSliders(context context.Context, filter Filter) ([]*Slider, error) {
	return service.repo.ListSliders(context, filter)
}

func (service *Service) GetSlider(context context.Context, id int64) (*Slider, error) {
	return service.repo.GetSlider(context, id)
}

// CreateSlider stores a slide. Order defaults to 0 and IsActive to true.
func (service *Service) CreateSlider(context context.Context, input CreateInput) (*Slider, error) {
	slider := &Slider{
		Title:    input.Title,
		Subtitle: input.Subtitle,
		ImageURL: strings.TrimSpace(input.ImageURL),
		Order:    pointer.Fallback(input.Order, 0),
		IsActive: pointer.Fallback(input.IsActive, true),
	}

	validator := &validate.Validator{}
	validateSlider(validator, slider)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.CreateSlider(context, slider); err != nil {
		return nil, err
	}

	service.logger.Info("slider_created",
		slog.Int64("slider_id", slider.ID),
		slog.Int("order", slider.Order),
	)
	return slider, nil
}

func (service *Service) UpdateSlider(context context.Context, id int64, input UpdateInput) (*Slider, error) {
	slider, err := service.repo.GetSlider(context, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		slider.Title = slider.Title.Merge(input.Title)
	}
	if input.Subtitle != nil {
		slider.Subtitle = slider.Subtitle.Merge(input.Subtitle)
	}
	if input.ImageURL != nil {
		slider.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	if input.Order != nil {
		slider.Order = *input.Order
	}
	if input.IsActive != nil {
		slider.IsActive = *input.IsActive
	}

	validator := &validate.Validator{}
	validateSlider(validator, slider)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateSlider(context, slider); err != nil {
		return nil, err
	}

	service.logger.Info("slider_updated", slog.Int64("slider_id", id))
	return slider, nil
}

func (service *Service) DeleteSlider(context context.Context, id int64) error {
	if err := service.repo.DeleteSlider(context, id); err != nil {
		return err
	}

	service.logger.Warn("slider_deleted", slog.Int64("slider_id", id))
	return nil
}

// # Validation

func validateSlider(validator *validate.Validator, slider *Slider) {
	validator.LocalizedText(FieldTitle, slider.Title, true, maxTitleLen)
	validator.LocalizedText(FieldSubtitle, slider.Subtitle, false, maxSubtitleLen)

	validator.Required(FieldImageURL, slider.ImageURL)
	if slider.ImageURL != "" {
		validator.AssetRef(FieldImageURL, slider.ImageURL)
	}

	validator.Range(FieldOrder, slider.Order, 0, maxOrder)
}

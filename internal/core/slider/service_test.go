// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slider_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gstone/internal/core/slider"
	"github.com/taibuivan/gstone/internal/platform/apperr"
	"github.com/taibuivan/gstone/pkg/i18n"
	"github.com/taibuivan/gstone/pkg/pointer"
)

type fakeRepository struct {
	mu     sync.Mutex
	nextID int64
	clock  time.Time
	items  map[int64]*slider.Slider
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		clock: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		items: map[int64]*slider.Slider{},
	}
}

func (f *fakeRepository) ListSliders(_ context.Context, filter slider.Filter) ([]*slider.Slider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := []*slider.Slider{}
	for _, s := range f.items {
		if filter.IsActive != nil && s.IsActive != *filter.IsActive {
			continue
		}
		copied := *s
		out = append(out, &copied)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeRepository) GetSlider(_ context.Context, id int64) (*slider.Slider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.items[id]
	if !ok {
		return nil, apperr.NotFound("Slider")
	}
	copied := *s
	return &copied, nil
}

func (f *fakeRepository) CreateSlider(_ context.Context, s *slider.Slider) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	f.clock = f.clock.Add(time.Hour)
	s.ID = f.nextID
	s.CreatedAt = f.clock
	s.UpdatedAt = f.clock
	stored := *s
	f.items[s.ID] = &stored
	return nil
}

func (f *fakeRepository) UpdateSlider(_ context.Context, s *slider.Slider) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[s.ID]; !ok {
		return apperr.NotFound("Slider")
	}
	stored := *s
	f.items[s.ID] = &stored
	return nil
}

func (f *fakeRepository) DeleteSlider(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[id]; !ok {
		return apperr.NotFound("Slider")
	}
	delete(f.items, id)
	return nil
}

func newService(t *testing.T) *slider.Service {
	t.Helper()
	return slider.NewService(newFakeRepository(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	appErr := apperr.As(err)
	require.NotNil(t, appErr, "expected an AppError, got %v", err)
	assert.Equal(t, status, appErr.HTTPStatus)
}

func slide(title string, order int) slider.CreateInput {
	return slider.CreateInput{
		Title:    i18n.Text{i18n.LangAZ: title},
		ImageURL: "/uploads/images/" + title + ".jpg",
		Order:    &order,
	}
}

func TestCreateSlider_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input slider.CreateInput
		field string
	}{
		{"missing image", slider.CreateInput{Title: i18n.Text{i18n.LangAZ: "A"}}, "imageUrl"},
		{"relative image without slash", slider.CreateInput{Title: i18n.Text{i18n.LangAZ: "A"}, ImageURL: "img.jpg"}, "imageUrl"},
		{"negative order", slider.CreateInput{Title: i18n.Text{i18n.LangAZ: "A"}, ImageURL: "/a.jpg", Order: pointer.To(-1)}, "order"},
		{"missing title", slider.CreateInput{ImageURL: "/a.jpg"}, "title.az"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newService(t).CreateSlider(context.Background(), tt.input)
			requireStatus(t, err, http.StatusBadRequest)

			fields := []string{}
			for _, detail := range apperr.As(err).Details {
				fields = append(fields, detail.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestListSliders_Order(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	for _, input := range []slider.CreateInput{slide("ikinci", 1), slide("birinci-kohne", 0), slide("birinci-yeni", 0)} {
		_, err := service.CreateSlider(ctx, input)
		require.NoError(t, err)
	}

	sliders, err := service.ListSliders(ctx, slider.Filter{})
	require.NoError(t, err)

	titles := []string{}
	for _, s := range sliders {
		titles = append(titles, s.Title.Primary())
	}
	assert.Equal(t, []string{"birinci-yeni", "birinci-kohne", "ikinci"}, titles)
}

func TestUpdateSlider(t *testing.T) {
	service := newService(t)
	ctx := context.Background()

	created, err := service.CreateSlider(ctx, slide("esas", 0))
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	updated, err := service.UpdateSlider(ctx, created.ID, slider.UpdateInput{
		Subtitle: i18n.Text{i18n.LangEN: "Welcome"},
		Order:    pointer.To(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Order)
	assert.Equal(t, "Welcome", updated.Subtitle.Get(i18n.LangEN))
	assert.Equal(t, "/uploads/images/esas.jpg", updated.ImageURL)

	_, err = service.UpdateSlider(ctx, created.ID, slider.UpdateInput{ImageURL: pointer.To(" ")})
	requireStatus(t, err, http.StatusBadRequest)

	require.NoError(t, service.DeleteSlider(ctx, created.ID))
	requireStatus(t, service.DeleteSlider(ctx, created.ID), http.StatusNotFound)
}

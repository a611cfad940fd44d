// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package company_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gstone/internal/core/company"
	"github.com/taibuivan/gstone/internal/platform/apperr"
	"github.com/taibuivan/gstone/internal/platform/projection"
	"github.com/taibuivan/gstone/internal/upload"
	"github.com/taibuivan/gstone/pkg/i18n"
	"github.com/taibuivan/gstone/pkg/pointer"
)

// # Fakes

type fakeRepository struct {
	mu         sync.Mutex
	nextID     int64
	items      map[int64]*company.Company
	links      map[int64][]int64
	categories map[int64]i18n.Text
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		items: map[int64]*company.Company{},
		links: map[int64][]int64{},
		categories: map[int64]i18n.Text{
			1: {i18n.LangAZ: "Tikinti", i18n.LangEN: "Construction"},
			2: {i18n.LangAZ: "Qida", i18n.LangEN: "Food"},
		},
	}
}

func (f *fakeRepository) load(c *company.Company) *company.Company {
	out := *c
	out.Categories = []projection.Ref{}
	for _, id := range f.links[c.ID] {
		out.Categories = append(out.Categories, projection.Ref{ID: id, Title: f.categories[id].Clone()})
	}
	return &out
}

func (f *fakeRepository) ListCompanies(_ context.Context, filter company.Filter) ([]*company.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := []*company.Company{}
	for _, c := range f.items {
		if filter.Search != "" && !strings.Contains(strings.ToLower(c.Title.Primary()), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, f.load(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepository) GetCompany(_ context.Context, id int64) (*company.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.items[id]
	if !ok {
		return nil, apperr.NotFound("Company")
	}
	return f.load(c), nil
}

func (f *fakeRepository) GetCompanyBySlug(_ context.Context, slug string) (*company.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, c := range f.items {
		if c.Slug == slug {
			return f.load(c), nil
		}
	}
	return nil, apperr.NotFound("Company")
}

func (f *fakeRepository) CreateCompany(_ context.Context, c *company.Company, categoryIDs []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.items {
		if existing.Slug == c.Slug {
			return apperr.Conflict("An entry with this slug already exists")
		}
	}

	f.nextID++
	c.ID = f.nextID
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	stored := *c
	f.items[c.ID] = &stored
	f.links[c.ID] = append([]int64{}, categoryIDs...)
	return nil
}

func (f *fakeRepository) UpdateCompany(_ context.Context, c *company.Company, categoryIDs []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[c.ID]; !ok {
		return apperr.NotFound("Company")
	}
	stored := *c
	f.items[c.ID] = &stored
	if categoryIDs != nil {
		f.links[c.ID] = append([]int64{}, categoryIDs...)
	}
	return nil
}

func (f *fakeRepository) UpdateLogo(_ context.Context, id int64, logo string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.items[id]
	if !ok {
		return apperr.NotFound("Company")
	}
	c.Logo = &logo
	return nil
}

func (f *fakeRepository) DeleteCompany(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[id]; !ok {
		return apperr.NotFound("Company")
	}
	delete(f.items, id)
	return nil
}

func (f *fakeRepository) MissingCategoryIDs(_ context.Context, ids []int64) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var missing []int64
	for _, id := range ids {
		if _, ok := f.categories[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

type fakeUploader struct {
	calls int
	err   error
}

func (u *fakeUploader) Store(_ context.Context, kind upload.Kind, file upload.File) (*upload.Result, error) {
	u.calls++
	if u.err != nil {
		return nil, u.err
	}
	return &upload.Result{URL: "/uploads/" + string(kind) + "/" + file.Name, OriginalName: file.Name}, nil
}

func newService(t *testing.T) (*company.Service, *fakeUploader) {
	t.Helper()
	uploader := &fakeUploader{}
	return company.NewService(newFakeRepository(), uploader, slog.New(slog.NewTextHandler(io.Discard, nil))), uploader
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	appErr := apperr.As(err)
	require.NotNil(t, appErr, "expected an AppError, got %v", err)
	return appErr.HTTPStatus
}

// # Tests

func TestCreateCompany(t *testing.T) {
	service, _ := newService(t)

	created, err := service.CreateCompany(context.Background(), company.CreateInput{
		Title:       i18n.Text{i18n.LangAZ: "Bakı Şüşə Zavodu", i18n.LangEN: "Baku Glass Factory"},
		Description: i18n.Text{i18n.LangAZ: "Şüşə istehsalı"},
		Logo:        pointer.To("  /uploads/images/logo.png  "),
		CategoryIDs: []int64{1, 2},
	})
	require.NoError(t, err)

	assert.Equal(t, "baki-suse-zavodu", created.Slug)
	assert.Equal(t, "/uploads/images/logo.png", *created.Logo)
	require.Len(t, created.Categories, 2)
	assert.Equal(t, "Construction", created.Categories[0].Title.Get(i18n.LangEN))
}

/*
TestCreateCompany_Rejects covers validation and unknown category ids.
*/
func TestCreateCompany_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		input  company.CreateInput
		status int
		msg    string
	}{
		{
			name:   "unknown category",
			input:  company.CreateInput{Title: i18n.Text{i18n.LangAZ: "Firma"}, CategoryIDs: []int64{1, 99}},
			status: http.StatusNotFound,
			msg:    "Some category ids were not found",
		},
		{
			name:   "missing title",
			input:  company.CreateInput{Title: i18n.Text{}},
			status: http.StatusBadRequest,
			msg:    "Validation failed",
		},
		{
			name:   "invalid logo",
			input:  company.CreateInput{Title: i18n.Text{i18n.LangAZ: "Firma"}, Logo: pointer.To("javascript:alert(1)")},
			status: http.StatusBadRequest,
			msg:    "Validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newService(t)

			_, err := service.CreateCompany(context.Background(), tt.input)

			assert.Equal(t, tt.status, statusOf(t, err))
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestUpdateCompany(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	created, err := service.CreateCompany(ctx, company.CreateInput{
		Title:       i18n.Text{i18n.LangAZ: "Köhnə Ad", i18n.LangRU: "Старое имя"},
		Logo:        pointer.To("/uploads/images/old.png"),
		CategoryIDs: []int64{1},
	})
	require.NoError(t, err)

	t.Run("russian only keeps slug", func(t *testing.T) {
		updated, err := service.UpdateCompany(ctx, created.ID, company.UpdateInput{Title: i18n.Text{i18n.LangRU: "Новое имя"}})
		require.NoError(t, err)
		assert.Equal(t, "kohne-ad", updated.Slug)
		assert.Equal(t, "Новое имя", updated.Title.Get(i18n.LangRU))
		assert.Len(t, updated.Categories, 1)
	})

	t.Run("azerbaijani change regenerates slug", func(t *testing.T) {
		updated, err := service.UpdateCompany(ctx, created.ID, company.UpdateInput{Title: i18n.Text{i18n.LangAZ: "Yeni Ad"}})
		require.NoError(t, err)
		assert.Equal(t, "yeni-ad", updated.Slug)
	})

	t.Run("blank logo clears it", func(t *testing.T) {
		updated, err := service.UpdateCompany(ctx, created.ID, company.UpdateInput{Logo: pointer.To("")})
		require.NoError(t, err)
		assert.Nil(t, updated.Logo)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := service.UpdateCompany(ctx, created.ID, company.UpdateInput{CategoryIDs: &[]int64{42}})
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})
}

func TestUploadLogo(t *testing.T) {
	service, uploader := newService(t)
	ctx := context.Background()

	created, err := service.CreateCompany(ctx, company.CreateInput{Title: i18n.Text{i18n.LangAZ: "Loqo"}})
	require.NoError(t, err)

	updated, err := service.UploadLogo(ctx, created.ID, upload.File{Name: "brand.png"})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/images/brand.png", *updated.Logo)

	_, err = service.UploadLogo(ctx, 404, upload.File{Name: "brand.png"})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	assert.Equal(t, 1, uploader.calls, "missing company must not store a file")

	uploader.err = apperr.UnsupportedMediaType("File type text/plain is not allowed")
	_, err = service.UploadLogo(ctx, created.ID, upload.File{Name: "notes.txt"})
	assert.Equal(t, http.StatusUnsupportedMediaType, statusOf(t, err))
}

func TestDeleteCompany(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	created, err := service.CreateCompany(ctx, company.CreateInput{Title: i18n.Text{i18n.LangAZ: "Silinən"}})
	require.NoError(t, err)

	require.NoError(t, service.DeleteCompany(ctx, created.ID))
	assert.Equal(t, http.StatusNotFound, statusOf(t, service.DeleteCompany(ctx, created.ID)))
}

// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gstone/internal/platform/apperr"
	"github.com/taibuivan/gstone/internal/platform/sec"
	"github.com/taibuivan/gstone/internal/users/account"
	"github.com/taibuivan/gstone/internal/users/auth"
	"github.com/taibuivan/gstone/pkg/pointer"
)

const (
	adminID  = "0190a1b2-0000-7000-8000-000000000001"
	editorID = "0190a1b2-0000-7000-8000-000000000002"
)

type fakeRepository struct {
	mu       sync.Mutex
	accounts map[string]*auth.Account
}

func (f *fakeRepository) ListAccounts(_ context.Context) ([]*auth.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := []*auth.Account{}
	for _, a := range f.accounts {
		copied := *a
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*auth.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if a, ok := f.accounts[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, apperr.NotFound("Account")
}

func (f *fakeRepository) Create(_ context.Context, a *auth.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.accounts {
		if strings.EqualFold(existing.Email, a.Email) {
			return apperr.Conflict("Email is already registered")
		}
	}
	stored := *a
	f.accounts[a.ID] = &stored
	return nil
}

func (f *fakeRepository) UpdateAccount(_ context.Context, a *auth.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.accounts[a.ID]
	if !ok {
		return apperr.NotFound("Account")
	}
	stored := *a
	stored.PasswordHash = existing.PasswordHash
	f.accounts[a.ID] = &stored
	return nil
}

func (f *fakeRepository) UpdatePassword(_ context.Context, id, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.accounts[id]
	if !ok {
		return apperr.NotFound("Account")
	}
	a.PasswordHash = hash
	return nil
}

func (f *fakeRepository) DeleteAccount(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.accounts[id]; !ok {
		return apperr.NotFound("Account")
	}
	delete(f.accounts, id)
	return nil
}

func newService(t *testing.T) (*account.Service, *fakeRepository) {
	t.Helper()

	hash, err := sec.HashPassword("kohne-parol")
	require.NoError(t, err)

	repo := &fakeRepository{accounts: map[string]*auth.Account{
		adminID:  {ID: adminID, Username: "admin", Email: "admin@gstone.az", PasswordHash: hash, Role: sec.RoleAdmin, IsActive: true},
		editorID: {ID: editorID, Username: "redaktor", Email: "editor@gstone.az", PasswordHash: hash, Role: sec.RoleEditor, IsActive: true},
	}}
	return account.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	appErr := apperr.As(err)
	require.NotNil(t, appErr, "expected an AppError, got %v", err)
	assert.Equal(t, status, appErr.HTTPStatus)
}

func TestCreateAccount(t *testing.T) {
	service, repo := newService(t)

	created, err := service.CreateAccount(context.Background(), account.CreateInput{
		Username: " yeni ",
		Email:    "Yeni@GStone.az",
		Password: "yeni-parol-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "yeni", created.Username)
	assert.Equal(t, "yeni@gstone.az", created.Email)
	assert.Equal(t, sec.RoleEditor, created.Role)
	assert.True(t, created.IsActive)
	assert.True(t, sec.CheckPasswordHash("yeni-parol-1", repo.accounts[created.ID].PasswordHash))
}

func TestCreateAccount_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		input  account.CreateInput
		status int
	}{
		{"short password", account.CreateInput{Username: "abc", Email: "a@gstone.az", Password: "123"}, http.StatusBadRequest},
		{"unknown role", account.CreateInput{Username: "abc", Email: "a@gstone.az", Password: "parol-123", Role: "owner"}, http.StatusBadRequest},
		{"bad email", account.CreateInput{Username: "abc", Email: "nope", Password: "parol-123"}, http.StatusBadRequest},
		{"password over bcrypt limit", account.CreateInput{Username: "abc", Email: "a@gstone.az", Password: strings.Repeat("ə", 40)}, http.StatusBadRequest},
		{"duplicate email", account.CreateInput{Username: "abc", Email: "editor@gstone.az", Password: "parol-123"}, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newService(t)
			_, err := service.CreateAccount(context.Background(), tt.input)
			requireStatus(t, err, tt.status)
		})
	}
}

func TestUpdateAccount(t *testing.T) {
	service, repo := newService(t)
	ctx := context.Background()

	updated, err := service.UpdateAccount(ctx, adminID, editorID, account.UpdateInput{
		Role:     pointer.To(sec.RoleAdmin),
		Password: pointer.To("sifirlanmis-parol"),
	})
	require.NoError(t, err)
	assert.Equal(t, sec.RoleAdmin, updated.Role)
	assert.True(t, sec.CheckPasswordHash("sifirlanmis-parol", repo.accounts[editorID].PasswordHash))

	t.Run("cannot demote self", func(t *testing.T) {
		_, err := service.UpdateAccount(ctx, adminID, adminID, account.UpdateInput{Role: pointer.To(sec.RoleEditor)})
		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("cannot disable self", func(t *testing.T) {
		_, err := service.UpdateAccount(ctx, adminID, adminID, account.UpdateInput{IsActive: pointer.To(false)})
		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := service.UpdateAccount(ctx, adminID, "not-a-uuid", account.UpdateInput{})
		requireStatus(t, err, http.StatusNotFound)
	})
}

func TestDeleteAccount(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	requireStatus(t, service.DeleteAccount(ctx, adminID, adminID), http.StatusForbidden)

	require.NoError(t, service.DeleteAccount(ctx, adminID, editorID))
	requireStatus(t, service.DeleteAccount(ctx, adminID, editorID), http.StatusNotFound)
}

func TestChangePassword(t *testing.T) {
	service, repo := newService(t)
	ctx := context.Background()

	err := service.ChangePassword(ctx, editorID, account.ChangePasswordInput{CurrentPassword: "sehv-parol", NewPassword: "yeni-parol-2"})
	requireStatus(t, err, http.StatusUnauthorized)

	err = service.ChangePassword(ctx, editorID, account.ChangePasswordInput{CurrentPassword: "kohne-parol", NewPassword: "qisa"})
	requireStatus(t, err, http.StatusBadRequest)

	require.NoError(t, service.ChangePassword(ctx, editorID, account.ChangePasswordInput{CurrentPassword: "kohne-parol", NewPassword: "yeni-parol-2"}))
	assert.True(t, sec.CheckPasswordHash("yeni-parol-2", repo.accounts[editorID].PasswordHash))
}

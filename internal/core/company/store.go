// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package company

import "context"

type Repository interface {
	ListCompanies(context context.Context, filter Filter) ([]*Company, error)
	GetCompany(context context.Context, id int64) (*Company, error)
	GetCompanyBySlug(context context.Context, slug string) (*Company, error)
	CreateCompany(context context.Context, company *Company, categoryIDs []int64) error
	UpdateCompany(context context.Context, company *Company, categoryIDs []int64) error
	UpdateLogo(context context.Context, id int64, logo string) error
	DeleteCompany(context context.Context, id int64) error

	// MissingCategoryIDs returns the ids that do not match a category.
	MissingCategoryIDs(context context.Context, ids []int64) ([]int64, error)
}

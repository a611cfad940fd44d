// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import "context"

// Repository is the persistence port for categories.
//
// Reads return the category with parent, children and companies loaded.
// A nil companyIDs on update leaves the company links untouched.
type Repository interface {
	ListCategories(context context.Context, filter Filter) ([]*Category, error)
	GetCategory(context context.Context, id int64) (*Category, error)
	GetCategoryBySlug(context context.Context, slug string) (*Category, error)
	CreateCategory(context context.Context, category *Category, companyIDs []int64) error
	UpdateCategory(context context.Context, category *Category, companyIDs []int64) error
	DeleteCategory(context context.Context, id int64) error
}

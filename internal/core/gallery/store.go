// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery

import "context"

// CategoryRepository is the persistence port for gallery categories.
type CategoryRepository interface {
	ListCategories(context context.Context, filter CategoryFilter) ([]*Category, error)
	GetCategory(context context.Context, id int64) (*Category, error)
	// GetCategoryBySlug loads the category with its items, oldest first.
	GetCategoryBySlug(context context.Context, slug string) (*Category, error)
	CreateCategory(context context.Context, category *Category) error
	UpdateCategory(context context.Context, category *Category) error
	DeleteCategory(context context.Context, id int64) error
}

// ItemRepository is the persistence port for gallery items.
type ItemRepository interface {
	ListItems(context context.Context, filter ItemFilter) ([]*Item, error)
	GetItem(context context.Context, id int64) (*Item, error)
	CreateItem(context context.Context, item *Item) error
	UpdateItem(context context.Context, item *Item) error
	DeleteItem(context context.Context, id int64) error
}

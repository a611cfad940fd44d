// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import "context"

// Repository is the persistence port for products.
//
// Reads return the product with its category and company summaries loaded.
type Repository interface {
	ListProducts(context context.Context, filter Filter, limit, offset int) ([]*Product, int, error)
	SearchProducts(context context.Context, filter SearchFilter, limit int) ([]*Product, error)
	GetProduct(context context.Context, id int64) (*Product, error)
	GetProductBySlug(context context.Context, slug string) (*Product, error)
	CreateProduct(context context.Context, product *Product) error
	UpdateProduct(context context.Context, product *Product) error
	DeleteProduct(context context.Context, id int64) error

	CategoryExists(context context.Context, id int64) (bool, error)
	CompanyExists(context context.Context, id int64) (bool, error)
}

// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/gstone/internal/platform/database/schema"
	"github.com/taibuivan/gstone/internal/platform/dberr"
	"github.com/taibuivan/gstone/internal/platform/projection"
	"github.com/taibuivan/gstone/pkg/i18n"
)

const entityName = "Product"

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// selectProducts joins the owning category and company for their summaries.
func selectProducts(withTotal bool) string {
	p := schema.ContentProduct
	ca := schema.ContentCategory
	co := schema.ContentCompany

	total := ""
	if withTotal {
		total = ", COUNT(*) OVER() AS total_count"
	}

	return fmt.Sprintf(`
		SELECT
			p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s,
			p.%s, p.%s, p.%s, p.%s, p.%s,
			ca.%s, co.%s%s
		FROM %s p
		JOIN %s ca ON ca.%s = p.%s
		JOIN %s co ON co.%s = p.%s
		WHERE TRUE`,
		p.ID, p.Title, p.Slug, p.Description, p.MainImage, p.ImageList, p.DetailPDF,
		p.CategoryID, p.CompanyID, p.IsActive, p.CreatedAt, p.UpdatedAt,
		ca.Title, co.Title, total,
		p.Table,
		ca.Table, ca.ID, p.CategoryID,
		co.Table, co.ID, p.CompanyID,
	)
}

func scanProduct(row pgx.Row, extra ...any) (*Product, error) {
	product := &Product{}

	var categoryTitle, companyTitle i18n.Text

	dest := []any{
		&product.ID, &product.Title, &product.Slug, &product.Description, &product.MainImage,
		&product.ImageList, &product.DetailPDF,
		&product.CategoryID, &product.CompanyID, &product.IsActive, &product.CreatedAt, &product.UpdatedAt,
		&categoryTitle, &companyTitle,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	if product.ImageList == nil {
		product.ImageList = []string{}
	}
	product.Category = &projection.Ref{ID: product.CategoryID, Title: categoryTitle}
	product.Company = &projection.Ref{ID: product.CompanyID, Title: companyTitle}
	return product, nil
}

// orderBy maps a sort key to its ORDER BY clause. The id tiebreak keeps pages stable.
func orderBy(sort Sort) string {
	p := schema.ContentProduct

	switch sort {
	case SortOldest:
		return fmt.Sprintf(" ORDER BY p.%s ASC, p.%s ASC", p.CreatedAt, p.ID)
	case SortAZ:
		return fmt.Sprintf(" ORDER BY p.%s->>'az' ASC, p.%s ASC", p.Title, p.ID)
	case SortZA:
		return fmt.Sprintf(" ORDER BY p.%s->>'az' DESC, p.%s DESC", p.Title, p.ID)
	default:
		return fmt.Sprintf(" ORDER BY p.%s DESC, p.%s DESC", p.CreatedAt, p.ID)
	}
}

/*
ListProducts returns one page of products and the total number of matches.

The total comes from a window function so a single query serves both. A page
past the end returns no rows, so the total is then counted separately.
*/
func (repository *PostgresRepository) ListProducts(context context.Context, filter Filter, limit, offset int) ([]*Product, int, error) {
	p := schema.ContentProduct

	var filterBuilder strings.Builder
	args := []any{}
	argID := 1

	if filter.CompanyID != nil {
		filterBuilder.WriteString(fmt.Sprintf(" AND p.%s = $%d", p.CompanyID, argID))
		args = append(args, *filter.CompanyID)
		argID++
	}

	if filter.CategoryID != nil {
		filterBuilder.WriteString(fmt.Sprintf(" AND p.%s = $%d", p.CategoryID, argID))
		args = append(args, *filter.CategoryID)
		argID++
	}

	if filter.IsActive != nil {
		filterBuilder.WriteString(fmt.Sprintf(" AND p.%s = $%d", p.IsActive, argID))
		args = append(args, *filter.IsActive)
		argID++
	}

	query := selectProducts(true) + filterBuilder.String() + orderBy(filter.Sort) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1)

	rows, err := repository.pool.Query(context, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_products")
	}
	defer rows.Close()

	products := []*Product{}
	var totalCount int
	for rows.Next() {
		product, err := scanProduct(rows, &totalCount)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_product")
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_products")
	}

	// Past the last page the window count has no row to ride on
	if len(products) == 0 && offset > 0 {
		countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s p WHERE TRUE`, p.Table) + filterBuilder.String()
		if err := repository.pool.QueryRow(context, countQuery, args...).Scan(&totalCount); err != nil {
			return nil, 0, dberr.Wrap(err, "count_products")
		}
	}

	return products, totalCount, nil
}

// SearchProducts matches title against every translation, newest first.
func (repository *PostgresRepository) SearchProducts(context context.Context, filter SearchFilter, limit int) ([]*Product, error) {
	p := schema.ContentProduct

	var queryBuilder strings.Builder
	queryBuilder.WriteString(selectProducts(false))

	args := []any{}
	argID := 1

	if filter.Title != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND p.%s::text ILIKE $%d", p.Title, argID))
		args = append(args, "%"+filter.Title+"%")
		argID++
	}

	if filter.CompanyID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND p.%s = $%d", p.CompanyID, argID))
		args = append(args, *filter.CompanyID)
		argID++
	}

	if filter.CategoryID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND p.%s = $%d", p.CategoryID, argID))
		args = append(args, *filter.CategoryID)
		argID++
	}

	queryBuilder.WriteString(orderBy(SortNewest))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argID))
	args = append(args, limit)

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "search_products")
	}
	defer rows.Close()

	products := []*Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_product")
		}
		products = append(products, product)
	}

	return products, dberr.Wrap(rows.Err(), "search_products")
}

func (repository *PostgresRepository) GetProduct(context context.Context, id int64) (*Product, error) {
	query := selectProducts(false) + fmt.Sprintf(" AND p.%s = $1", schema.ContentProduct.ID)

	product, err := scanProduct(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapEntity(err, entityName, "get_product")
	}
	return product, nil
}

func (repository *PostgresRepository) GetProductBySlug(context context.Context, slug string) (*Product, error) {
	query := selectProducts(false) + fmt.Sprintf(" AND p.%s = $1", schema.ContentProduct.Slug)

	product, err := scanProduct(repository.pool.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.WrapEntity(err, entityName, "get_product_by_slug")
	}
	return product, nil
}

func (repository *PostgresRepository) CreateProduct(context context.Context, product *Product) error {
	p := schema.ContentProduct

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s, %s, %s
	`,
		p.Table, p.Title, p.Slug, p.Description, p.MainImage, p.ImageList, p.DetailPDF,
		p.CategoryID, p.CompanyID, p.IsActive,
		p.ID, p.CreatedAt, p.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		product.Title, product.Slug, product.Description, product.MainImage, product.ImageList, product.DetailPDF,
		product.CategoryID, product.CompanyID, product.IsActive,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)

	return dberr.Wrap(err, "create_product")
}

func (repository *PostgresRepository) UpdateProduct(context context.Context, product *Product) error {
	p := schema.ContentProduct

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		p.Table, p.Title, p.Slug, p.Description, p.MainImage, p.ImageList, p.DetailPDF,
		p.CategoryID, p.CompanyID, p.IsActive, p.UpdatedAt,
		p.ID,
		p.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		product.ID, product.Title, product.Slug, product.Description, product.MainImage, product.ImageList,
		product.DetailPDF, product.CategoryID, product.CompanyID, product.IsActive,
	).Scan(&product.UpdatedAt)

	return dberr.WrapEntity(err, entityName, "update_product")
}

func (repository *PostgresRepository) DeleteProduct(context context.Context, id int64) error {
	p := schema.ContentProduct
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, p.Table, p.ID)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_product")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.WrapEntity(dberr.ErrNotFound, entityName, "delete_product")
	}
	return nil
}

func (repository *PostgresRepository) CategoryExists(context context.Context, id int64) (bool, error) {
	return repository.exists(context, schema.ContentCategory.Table, schema.ContentCategory.ID, id)
}

func (repository *PostgresRepository) CompanyExists(context context.Context, id int64) (bool, error) {
	return repository.exists(context, schema.ContentCompany.Table, schema.ContentCompany.ID, id)
}

func (repository *PostgresRepository) exists(context context.Context, table, column string, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, table, column)

	var found bool
	if err := repository.pool.QueryRow(context, query, id).Scan(&found); err != nil {
		return false, dberr.Wrap(err, "check_"+table)
	}
	return found, nil
}

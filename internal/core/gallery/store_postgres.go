// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/gstone/internal/platform/database/schema"
	"github.com/taibuivan/gstone/internal/platform/dberr"
)

// PostgresRepository implements both [CategoryRepository] and [ItemRepository].
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func selectCategories() string {
	gc := schema.ContentGalleryCategory
	return fmt.Sprintf(`
		SELECT gc.%s, gc.%s, gc.%s, gc.%s, gc.%s, gc.%s, gc.%s
		FROM %s gc
		WHERE TRUE`,
		gc.ID, gc.Title, gc.Slug, gc.MainImage, gc.IsActive, gc.CreatedAt, gc.UpdatedAt,
		gc.Table,
	)
}

func scanCategory(row pgx.Row) (*Category, error) {
	category := &Category{}
	err := row.Scan(
		&category.ID, &category.Title, &category.Slug, &category.MainImage, &category.IsActive,
		&category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return category, nil
}

// categoryOrder maps a sort key to its ORDER BY clause.
func categoryOrder(sort Sort) string {
	gc := schema.ContentGalleryCategory

	switch sort {
	case SortAZ:
		return fmt.Sprintf(" ORDER BY gc.%s->>'az' ASC, gc.%s ASC", gc.Title, gc.ID)
	case SortZA:
		return fmt.Sprintf(" ORDER BY gc.%s->>'az' DESC, gc.%s DESC", gc.Title, gc.ID)
	case SortNewest:
		return fmt.Sprintf(" ORDER BY gc.%s DESC, gc.%s DESC", gc.CreatedAt, gc.ID)
	case SortOldest:
		return fmt.Sprintf(" ORDER BY gc.%s ASC, gc.%s ASC", gc.CreatedAt, gc.ID)
	default:
		return fmt.Sprintf(" ORDER BY gc.%s DESC", gc.ID)
	}
}

func (repository *PostgresRepository) ListCategories(context context.Context, filter CategoryFilter) ([]*Category, error) {
	gc := schema.ContentGalleryCategory

	var queryBuilder strings.Builder
	queryBuilder.WriteString(selectCategories())

	args := []any{}
	if filter.IsActive != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND gc.%s = $1", gc.IsActive))
		args = append(args, *filter.IsActive)
	}

	queryBuilder.WriteString(categoryOrder(filter.Sort))

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_gallery_categories")
	}
	defer rows.Close()

	categories := []*Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_gallery_category")
		}
		categories = append(categories, category)
	}

	return categories, dberr.Wrap(rows.Err(), "list_gallery_categories")
}

func (repository *PostgresRepository) GetCategory(context context.Context, id int64) (*Category, error) {
	query := selectCategories() + fmt.Sprintf(" AND gc.%s = $1", schema.ContentGalleryCategory.ID)

	category, err := scanCategory(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapEntity(err, categoryEntity, "get_gallery_category")
	}
	return category, nil
}

func (repository *PostgresRepository) GetCategoryBySlug(context context.Context, slug string) (*Category, error) {
	query := selectCategories() + fmt.Sprintf(" AND gc.%s = $1", schema.ContentGalleryCategory.Slug)

	category, err := scanCategory(repository.pool.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.WrapEntity(err, categoryEntity, "get_gallery_category_by_slug")
	}

	items, err := repository.ListItems(context, ItemFilter{GalleryCategoryID: &category.ID})
	if err != nil {
		return nil, err
	}
	category.Items = items
	return category, nil
}

func (repository *PostgresRepository) CreateCategory(context context.Context, category *Category) error {
	gc := schema.ContentGalleryCategory

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s, %s
	`,
		gc.Table, gc.Title, gc.Slug, gc.MainImage, gc.IsActive,
		gc.ID, gc.CreatedAt, gc.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query, category.Title, category.Slug, category.MainImage, category.IsActive).
		Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	return dberr.Wrap(err, "create_gallery_category")
}

func (repository *PostgresRepository) UpdateCategory(context context.Context, category *Category) error {
	gc := schema.ContentGalleryCategory

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		gc.Table, gc.Title, gc.Slug, gc.MainImage, gc.IsActive, gc.UpdatedAt,
		gc.ID,
		gc.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query, category.ID, category.Title, category.Slug, category.MainImage, category.IsActive).
		Scan(&category.UpdatedAt)
	return dberr.WrapEntity(err, categoryEntity, "update_gallery_category")
}

func (repository *PostgresRepository) DeleteCategory(context context.Context, id int64) error {
	gc := schema.ContentGalleryCategory
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, gc.Table, gc.ID)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_gallery_category")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.WrapEntity(dberr.ErrNotFound, categoryEntity, "delete_gallery_category")
	}
	return nil
}

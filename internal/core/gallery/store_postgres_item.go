// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/gstone/internal/platform/database/schema"
	"github.com/taibuivan/gstone/internal/platform/dberr"
	"github.com/taibuivan/gstone/internal/platform/projection"
	"github.com/taibuivan/gstone/pkg/i18n"
)

// selectItems joins the owning category for its summary.
func selectItems() string {
	gi := schema.ContentGalleryItem
	gc := schema.ContentGalleryCategory

	return fmt.Sprintf(`
		SELECT
			gi.%s, gi.%s, gi.%s, gi.%s, gi.%s, gi.%s, gi.%s, gi.%s, gi.%s,
			gc.%s
		FROM %s gi
		JOIN %s gc ON gc.%s = gi.%s
		WHERE TRUE`,
		gi.ID, gi.Title, gi.Description, gi.MainImage, gi.ImageList, gi.GalleryCategoryID,
		gi.IsActive, gi.CreatedAt, gi.UpdatedAt,
		gc.Title,
		gi.Table,
		gc.Table, gc.ID, gi.GalleryCategoryID,
	)
}

func scanItem(row pgx.Row) (*Item, error) {
	item := &Item{}

	var categoryTitle i18n.Text
	err := row.Scan(
		&item.ID, &item.Title, &item.Description, &item.MainImage, &item.ImageList, &item.GalleryCategoryID,
		&item.IsActive, &item.CreatedAt, &item.UpdatedAt,
		&categoryTitle,
	)
	if err != nil {
		return nil, err
	}

	if item.ImageList == nil {
		item.ImageList = []string{}
	}
	item.Category = &projection.Ref{ID: item.GalleryCategoryID, Title: categoryTitle}
	return item, nil
}

func (repository *PostgresRepository) ListItems(context context.Context, filter ItemFilter) ([]*Item, error) {
	gi := schema.ContentGalleryItem

	var queryBuilder strings.Builder
	queryBuilder.WriteString(selectItems())

	args := []any{}
	argID := 1

	if filter.GalleryCategoryID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND gi.%s = $%d", gi.GalleryCategoryID, argID))
		args = append(args, *filter.GalleryCategoryID)
		argID++
	}

	if filter.IsActive != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND gi.%s = $%d", gi.IsActive, argID))
		args = append(args, *filter.IsActive)
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY gi.%s ASC", gi.ID))

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_gallery_items")
	}
	defer rows.Close()

	items := []*Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_gallery_item")
		}
		items = append(items, item)
	}

	return items, dberr.Wrap(rows.Err(), "list_gallery_items")
}

func (repository *PostgresRepository) GetItem(context context.Context, id int64) (*Item, error) {
	query := selectItems() + fmt.Sprintf(" AND gi.%s = $1", schema.ContentGalleryItem.ID)

	item, err := scanItem(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapEntity(err, itemEntity, "get_gallery_item")
	}
	return item, nil
}

func (repository *PostgresRepository) CreateItem(context context.Context, item *Item) error {
	gi := schema.ContentGalleryItem

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s, %s, %s
	`,
		gi.Table, gi.Title, gi.Description, gi.MainImage, gi.ImageList, gi.GalleryCategoryID, gi.IsActive,
		gi.ID, gi.CreatedAt, gi.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		item.Title, item.Description, item.MainImage, item.ImageList, item.GalleryCategoryID, item.IsActive,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	return dberr.Wrap(err, "create_gallery_item")
}

func (repository *PostgresRepository) UpdateItem(context context.Context, item *Item) error {
	gi := schema.ContentGalleryItem

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		gi.Table, gi.Title, gi.Description, gi.MainImage, gi.ImageList, gi.GalleryCategoryID, gi.IsActive, gi.UpdatedAt,
		gi.ID,
		gi.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		item.ID, item.Title, item.Description, item.MainImage, item.ImageList, item.GalleryCategoryID, item.IsActive,
	).Scan(&item.UpdatedAt)
	return dberr.WrapEntity(err, itemEntity, "update_gallery_item")
}

func (repository *PostgresRepository) DeleteItem(context context.Context, id int64) error {
	gi := schema.ContentGalleryItem
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, gi.Table, gi.ID)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_gallery_item")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.WrapEntity(dberr.ErrNotFound, itemEntity, "delete_gallery_item")
	}
	return nil
}

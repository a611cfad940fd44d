// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/gstone/internal/platform/database/schema"
	"github.com/taibuivan/gstone/internal/platform/dberr"
	"github.com/taibuivan/gstone/internal/platform/postgres"
	"github.com/taibuivan/gstone/internal/platform/projection"
	"github.com/taibuivan/gstone/pkg/i18n"
)

const entityName = "Category"

var companyLinks = postgres.Junction{
	Table:     schema.ContentCategoryCompany.Table,
	OwnerCol:  schema.ContentCategoryCompany.CategoryID,
	TargetCol: schema.ContentCategoryCompany.CompanyID,
}

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
selectCategories builds the shared projection query.

Parent is joined directly; children and companies are aggregated into JSON
arrays of {id, title} so one round trip loads every first-level relation.
*/
func selectCategories() string {
	c := schema.ContentCategory
	co := schema.ContentCompany
	cc := schema.ContentCategoryCompany

	return fmt.Sprintf(`
		SELECT
			c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s,
			p.%s, p.%s,
			COALESCE((
				SELECT json_agg(json_build_object('id', ch.%s, 'title', ch.%s) ORDER BY ch.%s)
				FROM %s ch
				WHERE ch.%s = c.%s
			), '[]') AS children,
			COALESCE((
				SELECT json_agg(json_build_object('id', co.%s, 'title', co.%s) ORDER BY co.%s)
				FROM %s co
				JOIN %s cc ON cc.%s = co.%s
				WHERE cc.%s = c.%s
			), '[]') AS companies
		FROM %s c
		LEFT JOIN %s p ON p.%s = c.%s
		WHERE TRUE`,
		c.ID, c.Title, c.Slug, c.ParentID, c.IsActive, c.CreatedAt, c.UpdatedAt,
		c.ID, c.Title,
		c.ID, c.Title, c.ID,
		c.Table,
		c.ParentID, c.ID,
		co.ID, co.Title, co.ID,
		co.Table,
		cc.Table, cc.CompanyID, co.ID,
		cc.CategoryID, c.ID,
		c.Table,
		c.Table, c.ID, c.ParentID,
	)
}

func scanCategory(row pgx.Row) (*Category, error) {
	category := &Category{}

	var parentID *int64
	var parentTitle i18n.Text

	err := row.Scan(
		&category.ID, &category.Title, &category.Slug, &category.ParentID, &category.IsActive,
		&category.CreatedAt, &category.UpdatedAt,
		&parentID, &parentTitle,
		&category.Children, &category.Companies,
	)
	if err != nil {
		return nil, err
	}

	if parentID != nil {
		category.Parent = &projection.Ref{ID: *parentID, Title: parentTitle}
	}
	return category, nil
}

func (repository *PostgresRepository) ListCategories(context context.Context, filter Filter) ([]*Category, error) {
	c := schema.ContentCategory

	var queryBuilder strings.Builder
	queryBuilder.WriteString(selectCategories())

	args := []any{}
	argID := 1

	if filter.IsActive != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND c.%s = $%d", c.IsActive, argID))
		args = append(args, *filter.IsActive)
		argID++
	}

	// Search across every translation
	if filter.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND (c.%[1]s->>'az' ILIKE $%[2]d OR c.%[1]s->>'en' ILIKE $%[2]d OR c.%[1]s->>'ru' ILIKE $%[2]d)",
			c.Title, argID,
		))
		args = append(args, "%"+filter.Search+"%")
		argID++
	}

	if filter.CategorySlug != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND c.%s = $%d", c.Slug, argID))
		args = append(args, filter.CategorySlug)
		argID++
	}

	// Only categories linked to the given company
	if filter.CompanySlug != "" {
		co := schema.ContentCompany
		cc := schema.ContentCategoryCompany
		queryBuilder.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM %s fcc JOIN %s fco ON fco.%s = fcc.%s WHERE fcc.%s = c.%s AND fco.%s = $%d)",
			cc.Table, co.Table, co.ID, cc.CompanyID, cc.CategoryID, c.ID, co.Slug, argID,
		))
		args = append(args, filter.CompanySlug)
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY c.%s ASC", c.ID))

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	categories := []*Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, category)
	}

	return categories, dberr.Wrap(rows.Err(), "list_categories")
}

func (repository *PostgresRepository) GetCategory(context context.Context, id int64) (*Category, error) {
	query := selectCategories() + fmt.Sprintf(" AND c.%s = $1", schema.ContentCategory.ID)

	category, err := scanCategory(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapEntity(err, entityName, "get_category")
	}
	return category, nil
}

func (repository *PostgresRepository) GetCategoryBySlug(context context.Context, slug string) (*Category, error) {
	query := selectCategories() + fmt.Sprintf(" AND c.%s = $1", schema.ContentCategory.Slug)

	category, err := scanCategory(repository.pool.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.WrapEntity(err, entityName, "get_category_by_slug")
	}
	return category, nil
}

func (repository *PostgresRepository) CreateCategory(context context.Context, category *Category, companyIDs []int64) error {
	c := schema.ContentCategory

	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_category")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s, %s
	`,
		c.Table, c.Title, c.Slug, c.ParentID, c.IsActive,
		c.ID, c.CreatedAt, c.UpdatedAt,
	)

	err = transaction.QueryRow(context, query, category.Title, category.Slug, category.ParentID, category.IsActive).
		Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_category")
	}

	if len(companyIDs) > 0 {
		if err := postgres.ReplaceLinks(context, transaction, companyLinks, category.ID, companyIDs); err != nil {
			return dberr.Wrap(err, "link_category_companies")
		}
	}

	return dberr.Wrap(transaction.Commit(context), "commit_create_category")
}

func (repository *PostgresRepository) UpdateCategory(context context.Context, category *Category, companyIDs []int64) error {
	c := schema.ContentCategory

	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_category")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		c.Table, c.Title, c.Slug, c.ParentID, c.IsActive, c.UpdatedAt,
		c.ID,
		c.UpdatedAt,
	)

	err = transaction.QueryRow(context, query, category.ID, category.Title, category.Slug, category.ParentID, category.IsActive).
		Scan(&category.UpdatedAt)
	if err != nil {
		return dberr.WrapEntity(err, entityName, "update_category")
	}

	if companyIDs != nil {
		if err := postgres.ReplaceLinks(context, transaction, companyLinks, category.ID, companyIDs); err != nil {
			return dberr.Wrap(err, "link_category_companies")
		}
	}

	return dberr.Wrap(transaction.Commit(context), "commit_update_category")
}

func (repository *PostgresRepository) DeleteCategory(context context.Context, id int64) error {
	c := schema.ContentCategory
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, c.Table, c.ID)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_category")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.WrapEntity(dberr.ErrNotFound, entityName, "delete_category")
	}
	return nil
}

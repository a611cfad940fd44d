// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package company

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/gstone/internal/platform/database/schema"
	"github.com/taibuivan/gstone/internal/platform/dberr"
	"github.com/taibuivan/gstone/internal/platform/postgres"
)

const entityName = "Company"

var categoryLinks = postgres.Junction{
	Table:     schema.ContentCategoryCompany.Table,
	OwnerCol:  schema.ContentCategoryCompany.CompanyID,
	TargetCol: schema.ContentCategoryCompany.CategoryID,
}

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// selectCompanies loads companies with their categories aggregated as {id, title}.
func selectCompanies() string {
	co := schema.ContentCompany
	ca := schema.ContentCategory
	cc := schema.ContentCategoryCompany

	return fmt.Sprintf(`
		SELECT
			co.%s, co.%s, co.%s, co.%s, co.%s, co.%s, co.%s,
			COALESCE((
				SELECT json_agg(json_build_object('id', ca.%s, 'title', ca.%s) ORDER BY ca.%s)
				FROM %s ca
				JOIN %s cc ON cc.%s = ca.%s
				WHERE cc.%s = co.%s
			), '[]') AS categories
		FROM %s co
		WHERE TRUE`,
		co.ID, co.Title, co.Description, co.Logo, co.Slug, co.CreatedAt, co.UpdatedAt,
		ca.ID, ca.Title, ca.ID,
		ca.Table,
		cc.Table, cc.CategoryID, ca.ID,
		cc.CompanyID, co.ID,
		co.Table,
	)
}

func scanCompany(row pgx.Row) (*Company, error) {
	company := &Company{}
	err := row.Scan(
		&company.ID, &company.Title, &company.Description, &company.Logo, &company.Slug,
		&company.CreatedAt, &company.UpdatedAt,
		&company.Categories,
	)
	if err != nil {
		return nil, err
	}
	return company, nil
}

func (repository *PostgresRepository) ListCompanies(context context.Context, filter Filter) ([]*Company, error) {
	co := schema.ContentCompany

	var queryBuilder strings.Builder
	queryBuilder.WriteString(selectCompanies())

	args := []any{}
	argID := 1

	if filter.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND (co.%[1]s->>'az' ILIKE $%[2]d OR co.%[1]s->>'en' ILIKE $%[2]d OR co.%[1]s->>'ru' ILIKE $%[2]d)",
			co.Title, argID,
		))
		args = append(args, "%"+filter.Search+"%")
		argID++
	}

	if filter.CategorySlug != "" {
		ca := schema.ContentCategory
		cc := schema.ContentCategoryCompany
		queryBuilder.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM %s fcc JOIN %s fca ON fca.%s = fcc.%s WHERE fcc.%s = co.%s AND fca.%s = $%d)",
			cc.Table, ca.Table, ca.ID, cc.CategoryID, cc.CompanyID, co.ID, ca.Slug, argID,
		))
		args = append(args, filter.CategorySlug)
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY co.%s ASC", co.ID))

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_companies")
	}
	defer rows.Close()

	companies := []*Company{}
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_company")
		}
		companies = append(companies, company)
	}

	return companies, dberr.Wrap(rows.Err(), "list_companies")
}

func (repository *PostgresRepository) GetCompany(context context.Context, id int64) (*Company, error) {
	query := selectCompanies() + fmt.Sprintf(" AND co.%s = $1", schema.ContentCompany.ID)

	company, err := scanCompany(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapEntity(err, entityName, "get_company")
	}
	return company, nil
}

func (repository *PostgresRepository) GetCompanyBySlug(context context.Context, slug string) (*Company, error) {
	query := selectCompanies() + fmt.Sprintf(" AND co.%s = $1", schema.ContentCompany.Slug)

	company, err := scanCompany(repository.pool.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.WrapEntity(err, entityName, "get_company_by_slug")
	}
	return company, nil
}

func (repository *PostgresRepository) CreateCompany(context context.Context, company *Company, categoryIDs []int64) error {
	co := schema.ContentCompany

	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_company")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s, %s
	`,
		co.Table, co.Title, co.Description, co.Logo, co.Slug,
		co.ID, co.CreatedAt, co.UpdatedAt,
	)

	err = transaction.QueryRow(context, query, company.Title, company.Description, company.Logo, company.Slug).
		Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_company")
	}

	if len(categoryIDs) > 0 {
		if err := postgres.ReplaceLinks(context, transaction, categoryLinks, company.ID, categoryIDs); err != nil {
			return dberr.Wrap(err, "link_company_categories")
		}
	}

	return dberr.Wrap(transaction.Commit(context), "commit_create_company")
}

func (repository *PostgresRepository) UpdateCompany(context context.Context, company *Company, categoryIDs []int64) error {
	co := schema.ContentCompany

	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_company")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		co.Table, co.Title, co.Description, co.Logo, co.Slug, co.UpdatedAt,
		co.ID,
		co.UpdatedAt,
	)

	err = transaction.QueryRow(context, query, company.ID, company.Title, company.Description, company.Logo, company.Slug).
		Scan(&company.UpdatedAt)
	if err != nil {
		return dberr.WrapEntity(err, entityName, "update_company")
	}

	if categoryIDs != nil {
		if err := postgres.ReplaceLinks(context, transaction, categoryLinks, company.ID, categoryIDs); err != nil {
			return dberr.Wrap(err, "link_company_categories")
		}
	}

	return dberr.Wrap(transaction.Commit(context), "commit_update_company")
}

func (repository *PostgresRepository) UpdateLogo(context context.Context, id int64, logo string) error {
	co := schema.ContentCompany
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`, co.Table, co.Logo, co.UpdatedAt, co.ID)

	cmd, err := repository.pool.Exec(context, query, id, logo)
	if err != nil {
		return dberr.Wrap(err, "update_company_logo")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.WrapEntity(dberr.ErrNotFound, entityName, "update_company_logo")
	}
	return nil
}

func (repository *PostgresRepository) DeleteCompany(context context.Context, id int64) error {
	co := schema.ContentCompany
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, co.Table, co.ID)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_company")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.WrapEntity(dberr.ErrNotFound, entityName, "delete_company")
	}
	return nil
}

func (repository *PostgresRepository) MissingCategoryIDs(context context.Context, ids []int64) ([]int64, error) {
	ca := schema.ContentCategory
	query := fmt.Sprintf(`
		SELECT requested.id
		FROM unnest($1::bigint[]) AS requested(id)
		WHERE NOT EXISTS (SELECT 1 FROM %s ca WHERE ca.%s = requested.id)
	`, ca.Table, ca.ID)

	rows, err := repository.pool.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "check_company_categories")
	}

	missing, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	return missing, dberr.Wrap(err, "check_company_categories")
}

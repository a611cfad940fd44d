// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/gstone/internal/platform/database/schema"
	"github.com/taibuivan/gstone/internal/platform/dberr"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func selectSections() string {
	s := schema.ContentSection
	return fmt.Sprintf(`
		SELECT s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s
		FROM %s s
		WHERE TRUE`,
		s.ID, s.Page, s.Title, s.Content, s.Media, s.SortOrder, s.IsActive, s.AdditionalData,
		s.CreatedAt, s.UpdatedAt,
		s.Table,
	)
}

func scanSection(row pgx.Row) (*Section, error) {
	section := &Section{}
	err := row.Scan(
		&section.ID, &section.Page, &section.Title, &section.Content, &section.Media, &section.Order,
		&section.IsActive, &section.AdditionalData, &section.CreatedAt, &section.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if section.Media == nil {
		section.Media = []string{}
	}
	return section, nil
}

func (repository *PostgresRepository) ListSections(context context.Context, filter Filter) ([]*Section, error) {
	s := schema.ContentSection

	var queryBuilder strings.Builder
	queryBuilder.WriteString(selectSections())

	args := []any{}
	argID := 1

	if filter.Page != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND s.%s = $%d", s.Page, argID))
		args = append(args, filter.Page)
		argID++
	}

	if filter.IsActive != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND s.%s = $%d", s.IsActive, argID))
		args = append(args, *filter.IsActive)
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY s.%s ASC, s.%s DESC, s.%s DESC", s.SortOrder, s.CreatedAt, s.ID))

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_sections")
	}
	defer rows.Close()

	sections := []*Section{}
	for rows.Next() {
		section, err := scanSection(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_section")
		}
		sections = append(sections, section)
	}

	return sections, dberr.Wrap(rows.Err(), "list_sections")
}

func (repository *PostgresRepository) GetSection(context context.Context, id int64) (*Section, error) {
	query := selectSections() + fmt.Sprintf(" AND s.%s = $1", schema.ContentSection.ID)

	section, err := scanSection(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapEntity(err, entityName, "get_section")
	}
	return section, nil
}

func (repository *PostgresRepository) NextOrder(context context.Context, page string) (int, error) {
	s := schema.ContentSection
	query := fmt.Sprintf(`SELECT COALESCE(MAX(%s) + 1, 0) FROM %s WHERE %s = $1`, s.SortOrder, s.Table, s.Page)

	var next int
	if err := repository.pool.QueryRow(context, query, page).Scan(&next); err != nil {
		return 0, dberr.Wrap(err, "next_section_order")
	}
	return next, nil
}

func (repository *PostgresRepository) CreateSection(context context.Context, section *Section) error {
	s := schema.ContentSection

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s, %s, %s
	`,
		s.Table, s.Page, s.Title, s.Content, s.Media, s.SortOrder, s.IsActive, s.AdditionalData,
		s.ID, s.CreatedAt, s.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		section.Page, section.Title, section.Content, section.Media, section.Order, section.IsActive, section.AdditionalData,
	).Scan(&section.ID, &section.CreatedAt, &section.UpdatedAt)
	return dberr.Wrap(err, "create_section")
}

func (repository *PostgresRepository) UpdateSection(context context.Context, section *Section) error {
	s := schema.ContentSection

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		s.Table, s.Page, s.Title, s.Content, s.Media, s.SortOrder, s.IsActive, s.AdditionalData, s.UpdatedAt,
		s.ID,
		s.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		section.ID, section.Page, section.Title, section.Content, section.Media, section.Order, section.IsActive,
		section.AdditionalData,
	).Scan(&section.UpdatedAt)
	return dberr.WrapEntity(err, entityName, "update_section")
}

func (repository *PostgresRepository) DeleteSection(context context.Context, id int64) error {
	s := schema.ContentSection
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, s.Table, s.ID)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_section")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.WrapEntity(dberr.ErrNotFound, entityName, "delete_section")
	}
	return nil
}

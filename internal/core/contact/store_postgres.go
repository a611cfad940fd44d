// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

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

func contactColumns() string {
	c := schema.ContentContact
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		c.ID, c.Name, c.Email, c.Phone, c.Subject, c.Message, c.IsRead, c.CreatedAt)
}

func scanContact(row pgx.Row, extra ...any) (*Contact, error) {
	contact := &Contact{}
	dest := []any{
		&contact.ID, &contact.Name, &contact.Email, &contact.Phone, &contact.Subject, &contact.Message,
		&contact.IsRead, &contact.CreatedAt,
	}

	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return contact, nil
}

// ListContacts returns one page of submissions, newest first, and the total
// number of matches. Past the last page the total is counted separately.
func (repository *PostgresRepository) ListContacts(context context.Context, filter Filter, limit, offset int) ([]*Contact, int, error) {
	c := schema.ContentContact

	var filterBuilder strings.Builder
	args := []any{}
	argID := 1

	if filter.IsRead != nil {
		filterBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", c.IsRead, argID))
		args = append(args, *filter.IsRead)
		argID++
	}

	query := fmt.Sprintf("SELECT %s, COUNT(*) OVER() AS total_count FROM %s WHERE TRUE", contactColumns(), c.Table) +
		filterBuilder.String() +
		fmt.Sprintf(" ORDER BY %s DESC, %s DESC LIMIT $%d OFFSET $%d", c.CreatedAt, c.ID, argID, argID+1)

	rows, err := repository.pool.Query(context, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_contacts")
	}
	defer rows.Close()

	contacts := []*Contact{}
	var totalCount int
	for rows.Next() {
		contact, err := scanContact(rows, &totalCount)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_contact")
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_contacts")
	}

	if len(contacts) == 0 && offset > 0 {
		countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE TRUE", c.Table) + filterBuilder.String()
		if err := repository.pool.QueryRow(context, countQuery, args...).Scan(&totalCount); err != nil {
			return nil, 0, dberr.Wrap(err, "count_contacts")
		}
	}

	return contacts, totalCount, nil
}

func (repository *PostgresRepository) GetContact(context context.Context, id int64) (*Contact, error) {
	c := schema.ContentContact
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", contactColumns(), c.Table, c.ID)

	contact, err := scanContact(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapEntity(err, entityName, "get_contact")
	}
	return contact, nil
}

func (repository *PostgresRepository) CreateContact(context context.Context, contact *Contact) error {
	c := schema.ContentContact

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s, %s
	`,
		c.Table, c.Name, c.Email, c.Phone, c.Subject, c.Message,
		c.ID, c.IsRead, c.CreatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		contact.Name, contact.Email, contact.Phone, contact.Subject, contact.Message,
	).Scan(&contact.ID, &contact.IsRead, &contact.CreatedAt)
	return dberr.Wrap(err, "create_contact")
}

func (repository *PostgresRepository) MarkRead(context context.Context, id int64) (*Contact, error) {
	c := schema.ContentContact
	query := fmt.Sprintf("UPDATE %s SET %s = TRUE WHERE %s = $1 RETURNING %s",
		c.Table, c.IsRead, c.ID, contactColumns())

	contact, err := scanContact(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapEntity(err, entityName, "mark_contact_read")
	}
	return contact, nil
}

func (repository *PostgresRepository) DeleteContact(context context.Context, id int64) error {
	c := schema.ContentContact
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, c.Table, c.ID)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_contact")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.WrapEntity(dberr.ErrNotFound, entityName, "delete_contact")
	}
	return nil
}

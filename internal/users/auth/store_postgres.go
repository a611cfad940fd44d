// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/gstone/internal/platform/database/schema"
	"github.com/taibuivan/gstone/internal/platform/dberr"
)

const entityName = "Account"

// PostgresAccountRepository implements [AccountRepository] using pgx.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

func selectAccounts() string {
	a := schema.UserAccount
	return fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE TRUE`,
		a.ID, a.Username, a.Email, a.Password, a.Role, a.IsActive, a.LastLoginAt, a.CreatedAt, a.UpdatedAt,
		a.Table,
	)
}

func scanAccount(row pgx.Row) (*Account, error) {
	account := &Account{}
	err := row.Scan(
		&account.ID, &account.Username, &account.Email, &account.PasswordHash, &account.Role,
		&account.IsActive, &account.LastLoginAt, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (repository *PostgresAccountRepository) FindByID(context context.Context, id string) (*Account, error) {
	query := selectAccounts() + fmt.Sprintf(" AND %s = $1", schema.UserAccount.ID)

	account, err := scanAccount(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapEntity(err, entityName, "find_account_by_id")
	}
	return account, nil
}

func (repository *PostgresAccountRepository) FindByLogin(context context.Context, login string) (*Account, error) {
	a := schema.UserAccount
	query := selectAccounts() + fmt.Sprintf(" AND (LOWER(%s) = LOWER($1) OR %s = $1) LIMIT 1", a.Email, a.Username)

	account, err := scanAccount(repository.pool.QueryRow(context, query, login))
	if err != nil {
		return nil, dberr.WrapEntity(err, entityName, "find_account_by_login")
	}
	return account, nil
}

func (repository *PostgresAccountRepository) Create(context context.Context, account *Account) error {
	a := schema.UserAccount

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s, %s
	`,
		a.Table, a.ID, a.Username, a.Email, a.Password, a.Role, a.IsActive,
		a.CreatedAt, a.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		account.ID, account.Username, account.Email, account.PasswordHash, account.Role, account.IsActive,
	).Scan(&account.CreatedAt, &account.UpdatedAt)
	return dberr.Wrap(err, "create_account")
}

func (repository *PostgresAccountRepository) TouchLastLogin(context context.Context, id string, at time.Time) error {
	a := schema.UserAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`, a.Table, a.LastLoginAt, a.ID)

	_, err := repository.pool.Exec(context, query, id, at)
	return dberr.Wrap(err, "touch_account_last_login")
}

// # Account Administration

func (repository *PostgresAccountRepository) ListAccounts(context context.Context) ([]*Account, error) {
	a := schema.UserAccount
	query := selectAccounts() + fmt.Sprintf(" ORDER BY %s ASC", a.CreatedAt)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_accounts")
	}
	defer rows.Close()

	accounts := []*Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_account")
		}
		accounts = append(accounts, account)
	}

	return accounts, dberr.Wrap(rows.Err(), "list_accounts")
}

// UpdateAccount persists profile, role and status. The password hash is written separately.
func (repository *PostgresAccountRepository) UpdateAccount(context context.Context, account *Account) error {
	a := schema.UserAccount

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		a.Table, a.Username, a.Email, a.Role, a.IsActive, a.UpdatedAt,
		a.ID,
		a.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query, account.ID, account.Username, account.Email, account.Role, account.IsActive).
		Scan(&account.UpdatedAt)
	return dberr.WrapEntity(err, entityName, "update_account")
}

func (repository *PostgresAccountRepository) UpdatePassword(context context.Context, id, passwordHash string) error {
	a := schema.UserAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`, a.Table, a.Password, a.UpdatedAt, a.ID)

	cmd, err := repository.pool.Exec(context, query, id, passwordHash)
	if err != nil {
		return dberr.Wrap(err, "update_account_password")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.WrapEntity(dberr.ErrNotFound, entityName, "update_account_password")
	}
	return nil
}

func (repository *PostgresAccountRepository) DeleteAccount(context context.Context, id string) error {
	a := schema.UserAccount
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, a.Table, a.ID)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_account")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.WrapEntity(dberr.ErrNotFound, entityName, "delete_account")
	}
	return nil
}

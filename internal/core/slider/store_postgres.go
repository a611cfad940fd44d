// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slider

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

func selectSliders() string {
	s := schema.ContentSlider
	return fmt.Sprintf(`
		SELECT s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s, s.%s
		FROM %s s
		WHERE TRUE`,
		s.ID, s.Title, s.Subtitle, s.ImageURL, s.SortOrder, s.IsActive, s.CreatedAt, s.UpdatedAt,
		s.Table,
	)
}

func scanSlider(row pgx.Row) (*Slider, error) {
	slider := &Slider{}
	err := row.Scan(
		&slider.ID, &slider.Title, &slider.Subtitle, &slider.ImageURL, &slider.Order, &slider.IsActive,
		&slider.CreatedAt, &slider.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return slider, nil
}

func (repository *PostgresRepository) ListSliders(context context.Context, filter Filter) ([]*Slider, error) {
	s := schema.ContentSlider

	var queryBuilder strings.Builder
	queryBuilder.WriteString(selectSliders())

	args := []any{}
	if filter.IsActive != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND s.%s = $1", s.IsActive))
		args = append(args, *filter.IsActive)
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY s.%s ASC, s.%s DESC, s.%s DESC", s.SortOrder, s.CreatedAt, s.ID))

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_sliders")
	}
	defer rows.Close()

	sliders := []*Slider{}
	for rows.Next() {
		slider, err := scanSlider(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_slider")
		}
		sliders = append(sliders, slider)
	}

	return sliders, dberr.Wrap(rows.Err(), "list_sliders")
}

func (repository *PostgresRepository) GetSlider(context context.Context, id int64) (*Slider, error) {
	query := selectSliders() + fmt.Sprintf(" AND s.%s = $1", schema.ContentSlider.ID)

	slider, err := scanSlider(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapEntity(err, entityName, "get_slider")
	}
	return slider, nil
}

func (repository *PostgresRepository) CreateSlider(context context.Context, slider *Slider) error {
	s := schema.ContentSlider

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s, %s
	`,
		s.Table, s.Title, s.Subtitle, s.ImageURL, s.SortOrder, s.IsActive,
		s.ID, s.CreatedAt, s.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query, slider.Title, slider.Subtitle, slider.ImageURL, slider.Order, slider.IsActive).
		Scan(&slider.ID, &slider.CreatedAt, &slider.UpdatedAt)
	return dberr.Wrap(err, "create_slider")
}

func (repository *PostgresRepository) UpdateSlider(context context.Context, slider *Slider) error {
	s := schema.ContentSlider

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		s.Table, s.Title, s.Subtitle, s.ImageURL, s.SortOrder, s.IsActive, s.UpdatedAt,
		s.ID,
		s.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		slider.ID, slider.Title, slider.Subtitle, slider.ImageURL, slider.Order, slider.IsActive,
	).Scan(&slider.UpdatedAt)
	return dberr.WrapEntity(err, entityName, "update_slider")
}

func (repository *PostgresRepository) DeleteSlider(context context.Context, id int64) error {
	s := schema.ContentSlider
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, s.Table, s.ID)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_slider")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.WrapEntity(dberr.ErrNotFound, entityName, "delete_slider")
	}
	return nil
}

// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gstone/data/migrations"
)

func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@db:5432/gstone", "pgx5://u:p@db:5432/gstone"},
		{"postgresql://db/gstone", "pgx5://db/gstone"},
		{"pgx5://db/gstone", "pgx5://db/gstone"},
		{"host=db dbname=gstone", "host=db dbname=gstone"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, convertToPgx5DSN(tt.in))
		})
	}
}

/*
TestEmbeddedMigrations verifies the embedded set is paired up/down.
*/
func TestEmbeddedMigrations(t *testing.T) {
	entries, err := migrations.FS.ReadDir(".")
	require.NoError(t, err)

	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		names[e.Name()] = true
	}

	assert.True(t, names["000001_init_schema.up.sql"])
	assert.True(t, names["000001_init_schema.down.sql"])
}

// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migrations embeds the SQL schema migrations into the binary.
package migrations

import "embed"

// FS holds every *.sql migration in golang-migrate naming format.
//
//go:embed *.sql
var FS embed.FS

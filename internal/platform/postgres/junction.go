// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Junction names a many-to-many link table and its two key columns.
type Junction struct {
	Table     string
	OwnerCol  string
	TargetCol string
}

/*
ReplaceLinks synchronizes the links of one owner row inside a transaction.

Existing links are cleared and the new set is queued as a single [pgx.Batch].
Duplicate target IDs are collapsed before insertion.

Parameters:
  - context: context.Context
  - transaction: pgx.Tx (Active transaction owned by the caller)
  - junction: Junction (Link table description)
  - ownerID: int64
  - targetIDs: []int64 (Empty clears every link)

Returns:
  - error: Raw pgx error; callers wrap it with dberr
*/
func ReplaceLinks(context context.Context, transaction pgx.Tx, junction Junction, ownerID int64, targetIDs []int64) error {
	clearQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, junction.Table, junction.OwnerCol)
	if _, err := transaction.Exec(context, clearQuery, ownerID); err != nil {
		return err
	}

	if len(targetIDs) == 0 {
		return nil
	}

	insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`, junction.Table, junction.OwnerCol, junction.TargetCol)

	batch := &pgx.Batch{}
	seen := make(map[int64]struct{}, len(targetIDs))
	for _, targetID := range targetIDs {
		if _, dup := seen[targetID]; dup {
			continue
		}
		seen[targetID] = struct{}{}
		batch.Queue(insertQuery, ownerID, targetID)
	}

	return transaction.SendBatch(context, batch).Close()
}

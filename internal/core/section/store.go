// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section

import "context"

// Repository is the persistence port for sections.
// Listings are ordered by Order ascending, newest first within the same order.
type Repository interface {
	ListSections(context context.Context, filter Filter) ([]*Section, error)
	GetSection(context context.Context, id int64) (*Section, error)
	// NextOrder returns one past the highest order on page, or 0 for an empty page.
	NextOrder(context context.Context, page string) (int, error)
	CreateSection(context context.Context, section *Section) error
	UpdateSection(context context.Context, section *Section) error
	DeleteSection(context context.Context, id int64) error
}

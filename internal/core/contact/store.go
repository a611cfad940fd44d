// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import "context"

// Repository is the persistence port for contact messages. Listings are newest first.
type Repository interface {
	ListContacts(context context.Context, filter Filter, limit, offset int) ([]*Contact, int, error)
	GetContact(context context.Context, id int64) (*Contact, error)
	CreateContact(context context.Context, contact *Contact) error
	MarkRead(context context.Context, id int64) (*Contact, error)
	DeleteContact(context context.Context, id int64) error
}

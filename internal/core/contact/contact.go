// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package contact stores messages sent through the public contact form and
notifies the site owner about each one.
*/
package contact

import "time"

// Contact is a submitted message. It carries no translations, so the same
// shape serves the back office and notifications.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Subject   *string   `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// Filter narrows the back-office listing.
type Filter struct {
	IsRead *bool
}

// SubmitInput is the payload for POST /contacts.
type SubmitInput struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Subject *string `json:"subject"`
	Message string  `json:"message"`
}

// Global field names for validation
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldSubject = "subject"
	FieldMessage = "message"
)

const (
	entityName    = "Contact"
	maxNameLen    = 100
	maxEmailLen   = 255
	maxPhoneLen   = 30
	maxSubjectLen = 200
	maxMessageLen = 5000
)

// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/gstone/internal/platform/validate"
	"github.com/taibuivan/gstone/pkg/pointer"
)

type Service struct {
	repo     Repository
	notifier Notifier
	logger   *slog.Logger
}

func NewService(repo Repository, notifier Notifier, logger *slog.Logger) *Service {
	return &Service{repo: repo, notifier: notifier, logger: logger}
}

/*
Submit validates and stores a contact message, then notifies the owner.

A failed notification is logged and does not fail the submission: the message
is already persisted and visible in the back office.
*/
func (service *Service) Submit(context context.Context, input SubmitInput) (*Contact, error) {
	contact := &Contact{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Phone:   pointer.NonBlank(input.Phone),
		Subject: pointer.NonBlank(input.Subject),
		Message: strings.TrimSpace(input.Message),
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, contact.Name).MaxLen(FieldName, contact.Name, maxNameLen)
	validator.Required(FieldEmail, contact.Email)
	if contact.Email != "" {
		validator.MaxLen(FieldEmail, contact.Email, maxEmailLen).Email(FieldEmail, contact.Email)
	}
	validator.MaxLen(FieldPhone, pointer.Val(contact.Phone), maxPhoneLen)
	validator.MaxLen(FieldSubject, pointer.Val(contact.Subject), maxSubjectLen)
	validator.Required(FieldMessage, contact.Message).MaxLen(FieldMessage, contact.Message, maxMessageLen)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.CreateContact(context, contact); err != nil {
		return nil, err
	}

	service.logger.Info("contact_submitted", slog.Int64("contact_id", contact.ID))

	if err := service.notifier.NotifyContact(context, contact); err != nil {
		service.logger.Error("contact_notification_failed",
			slog.Int64("contact_id", contact.ID),
			slog.Any("error", err),
		)
	}
	return contact, nil
}

func (service *Service) ListContacts(context context.Context, filter Filter, limit, offset int) ([]*Contact, int, error) {
	return service.repo.ListContacts(context, filter, limit, offset)
}

func (service *Service) GetContact(context context.Context, id int64) (*Contact, error) {
	return service.repo.GetContact(context, id)
}

// MarkRead flags a message as handled. Marking an already read message is a no-op.
func (service *Service) MarkRead(context context.Context, id int64) (*Contact, error) {
	contact, err := service.repo.MarkRead(context, id)
	if err != nil {
		return nil, err
	}

	service.logger.Info("contact_marked_read", slog.Int64("contact_id", id))
	return contact, nil
}

func (service *Service) DeleteContact(context context.Context, id int64) error {
	if err := service.repo.DeleteContact(context, id); err != nil {
		return err
	}

	service.logger.Warn("contact_deleted", slog.Int64("contact_id", id))
	return nil
}

// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package contact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/taibuivan/gstone/pkg/pointer"
)

// Notifier announces a new contact message to the site owner.
type Notifier interface {
	NotifyContact(context context.Context, contact *Contact) error
}

// # Log Notifier

// LogNotifier records submissions in the application log. It is used when no
// mail server is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (notifier *LogNotifier) NotifyContact(_ context.Context, contact *Contact) error {
	notifier.logger.Info("contact_notification_logged",
		slog.Int64("contact_id", contact.ID),
		slog.String("from", contact.Email),
		slog.String("subject", pointer.Val(contact.Subject)),
	)
	return nil
}

// # SMTP Notifier

const (
	smtpTimeout     = 15 * time.Second
	implicitTLSPort = 465
)

// SMTPConfig holds the outbound mail settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	From      string
	Recipient string
}

/*
SMTPNotifier mails every submission to a fixed recipient.

Port 465 uses implicit TLS; other ports upgrade with STARTTLS when the server
offers it. PLAIN authentication is used only when a username is configured.
*/
type SMTPNotifier struct {
	config SMTPConfig
}

func NewSMTPNotifier(config SMTPConfig) *SMTPNotifier {
	if config.From == "" {
		config.From = config.Username
	}
	return &SMTPNotifier{config: config}
}

func (notifier *SMTPNotifier) NotifyContact(context context.Context, contact *Contact) error {
	message, err := BuildMessage(notifier.config.From, notifier.config.Recipient, contact)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(notifier.config.Host, notifier.clientOptions()...)
	if err != nil {
		return fmt.Errorf("smtp: configure client: %w", err)
	}

	if err := client.DialAndSendWithContext(context, message); err != nil {
		return fmt.Errorf("smtp: send to %s: %w", notifier.config.Host, err)
	}
	return nil
}

func (notifier *SMTPNotifier) clientOptions() []mail.Option {
	cfg := notifier.config
	options := []mail.Option{mail.WithPort(cfg.Port), mail.WithTimeout(smtpTimeout)}

	if cfg.Port == implicitTLSPort {
		options = append(options, mail.WithSSL())
	} else {
		options = append(options, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	if cfg.Username != "" {
		options = append(options,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	return options
}

// headerSafe strips line breaks so submitted values cannot inject headers.
var headerSafe = strings.NewReplacer("\r", " ", "\n", " ")

/*
BuildMessage renders the notification as a UTF-8 plain text email.

The body is quoted-printable, so arbitrarily long submitted lines are folded.
Reply-To points at the sender so the owner can answer directly.
*/
func BuildMessage(from, to string, contact *Contact) (*mail.Msg, error) {
	message := mail.NewMsg(mail.WithEncoding(mail.EncodingQP), mail.WithCharset(mail.CharsetUTF8))

	if err := message.From(from); err != nil {
		return nil, fmt.Errorf("smtp: sender %q: %w", from, err)
	}
	if err := message.To(to); err != nil {
		return nil, fmt.Errorf("smtp: recipient %q: %w", to, err)
	}
	if err := message.ReplyTo(headerSafe.Replace(contact.Email)); err != nil {
		return nil, fmt.Errorf("smtp: reply-to %q: %w", contact.Email, err)
	}

	subject := "Yeni əlaqə mesajı"
	if contact.Subject != nil {
		subject += ": " + *contact.Subject
	}
	message.Subject(headerSafe.Replace(subject))
	message.SetDate()
	message.SetMessageID()

	var body strings.Builder
	fmt.Fprintf(&body, "Ad: %s\n", contact.Name)
	fmt.Fprintf(&body, "E-poçt: %s\n", contact.Email)
	if contact.Phone != nil {
		fmt.Fprintf(&body, "Telefon: %s\n", *contact.Phone)
	}
	body.WriteString("\n")
	body.WriteString(strings.ReplaceAll(contact.Message, "\r\n", "\n"))
	body.WriteString("\n")

	message.SetBodyString(mail.TypeTextPlain, body.String())
	return message, nil
}

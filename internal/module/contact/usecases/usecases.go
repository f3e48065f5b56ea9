package usecases

import (
	"context"
	"database/sql"
	"strings"

	"wirpackens-service/internal/module/contact/models/entity"
	"wirpackens-service/internal/module/contact/models/request"
	"wirpackens-service/internal/module/contact/models/response"
	"wirpackens-service/internal/module/contact/repositories"
	"wirpackens-service/internal/module/pricing/calculator"
	"wirpackens-service/internal/pkg/mailer"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type Notifier interface {
	NotifyContact(ctx context.Context, d mailer.ContactMail) bool
}

type usecase struct {
	repo     repositories.Repositories
	notifier Notifier
	log      *otelzap.Logger
}

type Usecase interface {
	CreateContact(ctx context.Context, payload *request.Contact) (response.CreatedContact, error)
	ListContacts(ctx context.Context) ([]response.Contact, error)
}

func New(repo repositories.Repositories, notifier Notifier, log *otelzap.Logger) Usecase {
	return &usecase{
		repo:     repo,
		notifier: notifier,
		log:      log,
	}
}

// CreateContact stores the lead first; the team email is best effort.
func (u *usecase) CreateContact(ctx context.Context, payload *request.Contact) (response.CreatedContact, error) {
	contact, err := u.repo.InsertContact(ctx, entity.Contact{
		FirstName: strings.TrimSpace(payload.FirstName),
		LastName:  strings.TrimSpace(payload.LastName),
		Email:     strings.TrimSpace(payload.Email),
		Phone:     optional(payload.Phone),
		Service:   optional(payload.Service),
		Message:   optional(payload.Message),
	})
	if err != nil {
		return response.CreatedContact{}, err
	}

	mail := mailer.ContactMail{
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone.String,
		Message:   contact.Message.String,
	}
	if contact.Service.Valid {
		mail.ServiceLabel = calculator.Label(contact.Service.String)
	}

	emailSent := u.notifier.NotifyContact(ctx, mail)
	if !emailSent {
		u.log.Ctx(ctx).Warn("contact stored but email not sent", zap.Int64("contact_id", contact.ID))
	}

	return response.CreatedContact{
		Contact:   response.NewContact(contact),
		EmailSent: emailSent,
	}, nil
}

func (u *usecase) ListContacts(ctx context.Context) ([]response.Contact, error) {
	contacts, err := u.repo.ListContacts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.Contact, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, response.NewContact(c))
	}
	return out, nil
}

func optional(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}

package repositories

import (
	"context"

	"wirpackens-service/internal/module/contact/models/entity"
)

type Repositories interface {
	InsertContact(ctx context.Context, contact entity.Contact) (entity.Contact, error)
	ListContacts(ctx context.Context) ([]entity.Contact, error)
}

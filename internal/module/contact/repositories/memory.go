package repositories

import (
	"context"
	"time"

	"wirpackens-service/internal/module/contact/models/entity"
	"wirpackens-service/internal/pkg/memstore"
)

type memoryRepositories struct {
	contacts *memstore.Collection[entity.Contact]
}

func NewMemory(store *memstore.Collection[entity.Contact]) Repositories {
	return &memoryRepositories{contacts: store}
}

func (r *memoryRepositories) InsertContact(ctx context.Context, contact entity.Contact) (entity.Contact, error) {
	return r.contacts.Insert(func(id int64, now time.Time) entity.Contact {
		contact.ID = id
		contact.CreatedAt = now
		return contact
	}), nil
}

func (r *memoryRepositories) ListContacts(ctx context.Context) ([]entity.Contact, error) {
	return r.contacts.List(), nil
}

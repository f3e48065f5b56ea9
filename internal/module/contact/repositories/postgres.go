package repositories

import (
	"context"

	"wirpackens-service/internal/module/contact/models/entity"
	"wirpackens-service/internal/pkg/errors"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type repositories struct {
	db  *sqlx.DB
	log *otelzap.Logger
}

func New(db *sqlx.DB, log *otelzap.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// InsertContact implements Repositories.
func (r *repositories) InsertContact(ctx context.Context, contact entity.Contact) (entity.Contact, error) {
	query := `INSERT INTO contacts (first_name, last_name, email, phone, service, message)
		VALUES (:first_name, :last_name, :email, :phone, :service, :message)
		RETURNING id, created_at`

	rows, err := r.db.NamedQueryContext(ctx, query, contact)
	if err != nil {
		r.log.Ctx(ctx).Error("insert contact", zap.Error(err))
		return entity.Contact{}, errors.InternalServerError("error insert contact")
	}
	defer rows.Close()

	if !rows.Next() {
		r.log.Ctx(ctx).Error("insert contact returned no row", zap.Error(rows.Err()))
		return entity.Contact{}, errors.InternalServerError("error insert contact")
	}
	if err := rows.Scan(&contact.ID, &contact.CreatedAt); err != nil {
		r.log.Ctx(ctx).Error("scan inserted contact", zap.Error(err))
		return entity.Contact{}, errors.InternalServerError("error insert contact")
	}
	return contact, nil
}

// ListContacts implements Repositories.
func (r *repositories) ListContacts(ctx context.Context) ([]entity.Contact, error) {
	contacts := []entity.Contact{}
	query := `SELECT id, first_name, last_name, email, phone, service, message, created_at
		FROM contacts ORDER BY created_at DESC, id DESC`
	if err := r.db.SelectContext(ctx, &contacts, query); err != nil {
		r.log.Ctx(ctx).Error("list contacts", zap.Error(err))
		return nil, errors.InternalServerError("error list contacts")
	}
	return contacts, nil
}

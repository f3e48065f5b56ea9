package response

import (
	"database/sql"
	"time"

	"wirpackens-service/internal/module/contact/models/entity"
)

type Contact struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Service   *string   `json:"service"`
	Message   *string   `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewContact(e entity.Contact) Contact {
	return Contact{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Phone:     nullable(e.Phone),
		Service:   nullable(e.Service),
		Message:   nullable(e.Message),
		CreatedAt: e.CreatedAt,
	}
}

type CreatedContact struct {
	Contact   Contact
	EmailSent bool
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

package entity

import (
	"database/sql"
	"time"
)

type Contact struct {
	ID        int64          `db:"id"`
	FirstName string         `db:"first_name"`
	LastName  string         `db:"last_name"`
	Email     string         `db:"email"`
	Phone     sql.NullString `db:"phone"`
	Service   sql.NullString `db:"service"`
	Message   sql.NullString `db:"message"`
	CreatedAt time.Time      `db:"created_at"`
}

func (c Contact) RecordID() int64            { return c.ID }
func (c Contact) RecordCreatedAt() time.Time { return c.CreatedAt }

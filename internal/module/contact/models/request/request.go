package request

import "strings"

type Contact struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Message   string `json:"message"`
}

// Normalize trims the text fields so blank input fails the required rules.
func (c *Contact) Normalize() {
	for _, f := range []*string{&c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Service, &c.Message} {
		*f = strings.TrimSpace(*f)
	}
}

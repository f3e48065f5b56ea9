package stripe

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
)

// Error is an error answer from the Stripe API.
type Error struct {
	HTTPStatus int    `json:"-"`
	Type       string `json:"type"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("stripe: %s (%s, status %d)", e.Message, e.Code, e.HTTPStatus)
	}
	return fmt.Sprintf("stripe: %s (status %d)", e.Message, e.HTTPStatus)
}

func parseError(status int, raw []byte) error {
	var envelope struct {
		Error Error `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Error.Message == "" {
		return &Error{
			HTTPStatus: status,
			Message:    fmt.Sprintf("unexpected response: %s", http.StatusText(status)),
		}
	}
	envelope.Error.HTTPStatus = status
	return &envelope.Error
}

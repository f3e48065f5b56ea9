package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"wirpackens-service/internal/pkg/errors"

	"github.com/go-playground/validator/v10"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// New returns a validator that reports fields by their json name and knows
// the appointment date/time formats.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("appointment_date", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("appointment_time", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(timeLayout, strings.TrimSpace(fl.Field().String()))
		return err == nil
	})

	return v
}

// ParseDate accepts a plain calendar date or a full RFC3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// Fields flattens validator errors into one entry per failing field.
func Fields(err error) []errors.FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []errors.FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]errors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, errors.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "ist ein Pflichtfeld"
	case "required_if":
		return "ist für diese Dienstleistung ein Pflichtfeld"
	case "email":
		return "muss eine gültige E-Mail-Adresse sein"
	case "oneof":
		return fmt.Sprintf("muss einer der folgenden Werte sein: %s", fe.Param())
	case "min":
		return fmt.Sprintf("muss mindestens %s sein", fe.Param())
	case "max":
		return fmt.Sprintf("darf höchstens %s sein", fe.Param())
	case "appointment_date":
		return "muss ein Datum im Format JJJJ-MM-TT sein"
	case "appointment_time":
		return "muss eine Uhrzeit im Format HH:MM sein"
	default:
		return fmt.Sprintf("ist ungültig (%s)", fe.Tag())
	}
}

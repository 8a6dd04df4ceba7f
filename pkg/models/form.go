package models

import (
	"errors"
	"fmt"
)

var ErrUnknownField = errors.New("unknown contact form field")

// Field identifies one input of the contact form
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldCompany Field = "company"
	FieldMessage Field = "message"
)

// Fields lists every contact form field in render order
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldCompany, FieldMessage}
}

// RequiredFields lists the fields rendered with the native "required" attribute
func RequiredFields() []Field {
	return []Field{FieldName, FieldEmail, FieldMessage}
}

// Required reports whether the browser enforces a value for the field
func (f Field) Required() bool {
	return f == FieldName || f == FieldEmail || f == FieldMessage
}

// ParseField validates a raw field name coming from the page markup
func ParseField(raw string) (Field, error) {
	for _, f := range Fields() {
		if string(f) == raw {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, raw)
}

// ContactFormRecord represents the values typed into the contact form
type ContactFormRecord struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// Get returns the value held for a field
func (r ContactFormRecord) Get(field Field) (string, error) {
	switch field {
	case FieldName:
		return r.Name, nil
	case FieldEmail:
		return r.Email, nil
	case FieldCompany:
		return r.Company, nil
	case FieldMessage:
		return r.Message, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
}

// With returns a copy of the record with a single field replaced
func (r ContactFormRecord) With(field Field, value string) (ContactFormRecord, error) {
	switch field {
	case FieldName:
		r.Name = value
	case FieldEmail:
		r.Email = value
	case FieldCompany:
		r.Company = value
	case FieldMessage:
		r.Message = value
	default:
		return r, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return r, nil
}

// IsEmpty reports whether the record equals the initial all-empty value
func (r ContactFormRecord) IsEmpty() bool {
	return r == ContactFormRecord{}
}

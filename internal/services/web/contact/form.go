package contact

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field names one contact form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Fields lists the form inputs in display order.
var Fields = []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}

// ParseField maps a raw input name onto a form field.
func ParseField(raw string) (Field, bool) {
	field := Field(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Fields {
		if field == known {
			return field, true
		}
	}
	return "", false
}

// Form holds the visitor's contact form input. Every field is required;
// nothing else about the values is checked.
type Form struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Value returns the value of field.
func (f Form) Value(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldSubject:
		return f.Subject
	case FieldMessage:
		return f.Message
	default:
		return ""
	}
}

// With returns a copy of the form with field set to value.
func (f Form) With(field Field, value string) (Form, error) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldSubject:
		f.Subject = value
	case FieldMessage:
		f.Message = value
	default:
		return f, fmt.Errorf("unknown contact field %q", field)
	}
	return f, nil
}

// ValidationError lists the required fields left empty.
type ValidationError struct {
	Missing []Field
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Missing))
	for _, field := range e.Missing {
		names = append(names, string(field))
	}
	return "contact form missing required fields: " + strings.Join(names, ", ")
}

// ErrInvalidForm matches every ValidationError.
var ErrInvalidForm = errors.New("contact form is invalid")

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidForm
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that every field is filled in.
func (f Form) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate contact form: %w", err)
	}
	missing := make([]Field, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		if field, ok := ParseField(fieldErr.Field()); ok {
			missing = append(missing, field)
		}
	}
	return &ValidationError{Missing: missing}
}

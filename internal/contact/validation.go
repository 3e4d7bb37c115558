package contact

import (
	"github.com/go-playground/validator/v10"
)

// Submission is one contact form payload. Request-scoped; never stored.
type Submission struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Company string `json:"company" validate:"omitempty,max=100"`
	Message string `json:"message" validate:"required,min=10,max=5000"`

	// Honeypot is a hidden form field. Humans never fill it; any
	// non-empty value marks the submission as automated.
	Honeypot string `json:"honeypot"`
}

// FieldErrors maps a field name to its violation message.
type FieldErrors map[string]string

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a submission against the form rules and returns a
// field-level error report, or nil when the submission is valid. The
// honeypot is deliberately not a rule here; the endpoint handles it
// before validation.
func Validate(sub Submission) FieldErrors {
	err := validate.Struct(sub)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"body": "Invalid input"}
	}

	report := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		report[fieldName(fe.Field())] = fieldMessage(fe)
	}
	return report
}

func fieldName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "Company":
		return "company"
	case "Message":
		return "message"
	}
	return structField
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		switch fe.Tag() {
		case "min":
			return "Name must be at least 2 characters"
		case "max":
			return "Name too long"
		}
		return "Name is required"
	case "Email":
		if fe.Tag() == "max" {
			return "Email too long"
		}
		return "Invalid email address"
	case "Company":
		return "Company too long"
	case "Message":
		switch fe.Tag() {
		case "min":
			return "Message must be at least 10 characters"
		case "max":
			return "Message too long"
		}
		return "Message is required"
	}
	return "Invalid value"
}

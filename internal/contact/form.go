// Package contact implements the contact form: field validation, a
// simulated submission that never leaves the process, and per-client
// rate limiting.
package contact

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Submission is bound from the posted form by gin.
type Submission struct {
	Name    string `form:"name" binding:"required,max=100"`
	Email   string `form:"email" binding:"required,email,max=254"`
	Subject string `form:"subject" binding:"required,max=150"`
	Message string `form:"message" binding:"required,max=5000"`
}

// Trim removes surrounding whitespace from every field.
func (s Submission) Trim() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Subject: strings.TrimSpace(s.Subject),
		Message: strings.TrimSpace(s.Message),
	}
}

// Form is the render state of the contact form.
type Form struct {
	Values  Submission
	Errors  map[string]string
	Success string
	Failure string
}

// Reset clears every field and error. Success is kept so the message can
// be shown above the blank form.
func (f *Form) Reset() {
	f.Values = Submission{}
	f.Errors = nil
	f.Failure = ""
}

// HasErrors reports whether the form carries field errors or a failure message.
func (f *Form) HasErrors() bool {
	return len(f.Errors) > 0 || f.Failure != ""
}

var messages = map[string]string{
	"required": "This field is required.",
	"email":    "Enter a valid email address.",
	"max":      "This field is too long.",
}

var formNames = map[string]string{
	"Name":    "name",
	"Email":   "email",
	"Subject": "subject",
	"Message": "message",
}

// FieldErrors maps a binding error to per-field messages keyed by form
// field name. Errors that are not validation errors come back under "".
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"": "The form could not be read."}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key, ok := formNames[fe.Field()]
		if !ok {
			key = strings.ToLower(fe.Field())
		}
		if _, dup := out[key]; dup {
			continue
		}
		msg, ok := messages[fe.Tag()]
		if !ok {
			msg = "This field is invalid."
		}
		out[key] = msg
	}
	return out
}

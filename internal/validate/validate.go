// Package validate performs structural validation of auth request
// payloads: length bounds and email syntax only, no existence checks.
// Validation runs before any store or hashing work.
package validate

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/bkaddour/authd/internal/domain"
)

const (
	NameMinLength     = 4
	NameMaxLength     = 32
	EmailMinLength    = 6
	EmailMaxLength    = 254
	PasswordMinLength = 8
	// bcrypt only reads the first 72 bytes of input and rejects longer
	// passwords outright, so the bound is enforced here instead.
	PasswordMaxLength = 72
)

// Violation names a single violated constraint on a request field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a validation failure listing every violated constraint.
// It unwraps to domain.ErrInvalidInput.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Field + ": " + v.Message
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

func (e *Error) Unwrap() error {
	return domain.ErrInvalidInput
}

// Credentials is a normalized register or login payload. Email is
// trimmed and lowercased; name is trimmed.
type Credentials struct {
	Name     string
	Email    string
	Password string
}

// Register validates and normalizes a registration payload.
func Register(name, email, password string) (Credentials, error) {
	creds := Credentials{
		Name:     strings.TrimSpace(name),
		Email:    normalizeEmail(email),
		Password: password,
	}

	var violations []Violation
	violations = append(violations, checkName(creds.Name)...)
	violations = append(violations, checkEmail(creds.Email)...)
	violations = append(violations, checkPassword(creds.Password)...)
	if len(violations) > 0 {
		return Credentials{}, &Error{Violations: violations}
	}
	return creds, nil
}

// Login validates and normalizes a login payload. Only email and
// password are required.
func Login(email, password string) (Credentials, error) {
	creds := Credentials{
		Email:    normalizeEmail(email),
		Password: password,
	}

	var violations []Violation
	violations = append(violations, checkEmail(creds.Email)...)
	violations = append(violations, checkPassword(creds.Password)...)
	if len(violations) > 0 {
		return Credentials{}, &Error{Violations: violations}
	}
	return creds, nil
}

func checkName(name string) []Violation {
	if len(name) < NameMinLength || len(name) > NameMaxLength {
		return []Violation{{
			Field:   "name",
			Message: fmt.Sprintf("must be between %d and %d characters", NameMinLength, NameMaxLength),
		}}
	}
	return nil
}

func checkEmail(email string) []Violation {
	if len(email) < EmailMinLength || len(email) > EmailMaxLength {
		return []Violation{{
			Field:   "email",
			Message: fmt.Sprintf("must be between %d and %d characters", EmailMinLength, EmailMaxLength),
		}}
	}
	// mail.ParseAddress accepts the name-addr form ("Name <a@b>") too;
	// require the parsed address to round-trip to the bare input.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return []Violation{{Field: "email", Message: "must be a valid email address"}}
	}
	return nil
}

func checkPassword(password string) []Violation {
	if len(password) < PasswordMinLength || len(password) > PasswordMaxLength {
		return []Violation{{
			Field:   "password",
			Message: fmt.Sprintf("must be between %d and %d characters", PasswordMinLength, PasswordMaxLength),
		}}
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package auth

import (
	"strings"

	"github.com/kampkelly/favourite-things/internal/domain"
)

// SignUpInput holds parameters for the signup operation.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// Validate checks all fields and collects all errors.
// Expects Name and Email to be normalized already.
func (i SignUpInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !strings.Contains(i.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	if len(i.Email) > 254 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "max 254 characters"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	}
	// bcrypt ignores input past 72 bytes.
	if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 72 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SignInInput holds parameters for the signin operation.
type SignInInput struct {
	Email    string
	Password string
}

// Validate checks credentials are present. A malformed email is treated
// as bad credentials, not as a validation error.
func (i SignInInput) Validate() error {
	if i.Email == "" || i.Password == "" {
		return domain.ErrInvalidCredentials
	}
	return nil
}

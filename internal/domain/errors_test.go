package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("name", "required")

	if got := err.Error(); got != "validation: name — required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "email", Message: "required"},
		{Field: "password", Message: "required"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
	if len(err.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors))
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotFound, ErrAlreadyExists, ErrValidation,
		ErrUnauthorized, ErrConflict,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}

func TestUserFacingError_MessageAndKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err     *UserFacingError
		kind    error
		message string
	}{
		{ErrCategoryNameEmpty, ErrValidation, "Category name cannot be empty"},
		{ErrCategoryExists, ErrAlreadyExists, "Category already exists"},
		{ErrCategoryNotFound, ErrNotFound, "Category does not exist"},
		{ErrCategoryHasFavorites, ErrConflict, "Cannot delete category because it has favorite things"},
		{ErrEmailTaken, ErrAlreadyExists, "An account with this email already exists"},
		{ErrInvalidCredentials, ErrUnauthorized, "Email or password is incorrect"},
	}

	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.message {
			t.Errorf("Error(): got %q, want %q", got, tc.message)
		}
		if !errors.Is(tc.err, tc.kind) {
			t.Errorf("%q should match kind %v", tc.message, tc.kind)
		}
	}
}

func TestUserFacingError_SurvivesWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("delete category: %w", ErrCategoryHasFavorites)

	var ufe *UserFacingError
	if !errors.As(wrapped, &ufe) {
		t.Fatal("errors.As should find UserFacingError through the chain")
	}
	if ufe.Message != "Cannot delete category because it has favorite things" {
		t.Fatalf("unexpected message: %q", ufe.Message)
	}
	if !errors.Is(wrapped, ErrConflict) {
		t.Fatal("wrapped error should still match ErrConflict")
	}
}

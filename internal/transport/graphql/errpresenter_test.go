package graphql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/kampkelly/favourite-things/internal/domain"
)

func present(t *testing.T, err error) (string, map[string]interface{}) {
	t.Helper()
	presenter := NewErrorPresenter(slog.Default())
	gqlErr := presenter(context.Background(), err)
	return gqlErr.Message, gqlErr.Extensions
}

func TestErrorPresenter_UserFacingErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err         error
		wantMessage string
		wantCode    string
	}{
		{domain.ErrCategoryNameEmpty, "Category name cannot be empty", "VALIDATION"},
		{domain.ErrCategoryExists, "Category already exists", "ALREADY_EXISTS"},
		{domain.ErrCategoryNotFound, "Category does not exist", "NOT_FOUND"},
		{domain.ErrCategoryHasFavorites, "Cannot delete category because it has favorite things", "CONFLICT"},
		{domain.ErrEmailTaken, "An account with this email already exists", "ALREADY_EXISTS"},
		{domain.ErrInvalidCredentials, "Email or password is incorrect", "UNAUTHENTICATED"},
	}

	for _, tc := range cases {
		msg, ext := present(t, tc.err)
		if msg != tc.wantMessage {
			t.Errorf("%v: message got %q, want %q", tc.err, msg, tc.wantMessage)
		}
		if ext["code"] != tc.wantCode {
			t.Errorf("%v: code got %v, want %q", tc.err, ext["code"], tc.wantCode)
		}
	}
}

func TestErrorPresenter_WrappedUserFacingError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("resolver: %w", domain.ErrCategoryExists)

	msg, ext := present(t, wrapped)
	if msg != "Category already exists" {
		t.Errorf("message: got %q", msg)
	}
	if ext["code"] != "ALREADY_EXISTS" {
		t.Errorf("code: got %v", ext["code"])
	}
}

func TestErrorPresenter_ValidationError(t *testing.T) {
	t.Parallel()

	vErr := domain.NewValidationError("name", "required")

	_, ext := present(t, vErr)
	if ext["code"] != "VALIDATION" {
		t.Errorf("code: got %v", ext["code"])
	}
	if _, ok := ext["fields"]; !ok {
		t.Error("expected fields in extensions")
	}
}

func TestErrorPresenter_Unauthorized(t *testing.T) {
	t.Parallel()

	msg, ext := present(t, domain.ErrUnauthorized)
	if msg != "Unauthorized" {
		t.Errorf("message: got %q", msg)
	}
	if ext["code"] != "UNAUTHENTICATED" {
		t.Errorf("code: got %v", ext["code"])
	}
}

func TestErrorPresenter_UnexpectedErrorIsOpaque(t *testing.T) {
	t.Parallel()

	internal := errors.New("pq: connection refused at 10.0.0.3:5432")

	msg, ext := present(t, internal)
	if msg != "Something went wrong. Please try again!" {
		t.Errorf("message: got %q", msg)
	}
	if ext["code"] != "INTERNAL" {
		t.Errorf("code: got %v", ext["code"])
	}
}

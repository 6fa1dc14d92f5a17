package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/kampkelly/favourite-things/internal/domain"
)

// SignIn authenticates a user with email + password and returns a signed
// token. An unknown email and a wrong password produce the same error, so
// callers cannot probe which emails are registered.
func (s *Service) SignIn(ctx context.Context, input SignInInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth.SignIn get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.SignIn issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user signed in",
		slog.Int64("user_id", user.ID),
	)

	return result, nil
}

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

// SignUp creates a new user account and returns a signed token for it.
// Email uniqueness is enforced by the DB constraint; a duplicate surfaces
// as ErrEmailTaken regardless of how the race resolves.
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.SignUp hash password: %w", err)
	}

	user, err := s.users.Create(ctx, input.Name, input.Email, string(hash))
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("auth.SignUp create user: %w", err)
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.SignUp issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up",
		slog.Int64("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return result, nil
}

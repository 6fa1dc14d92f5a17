// Package auth implements the signup and signin use cases: password
// hashing, credential checks, and JWT issuance.
package auth

import (
	"context"
	"log/slog"

	"github.com/kampkelly/favourite-things/internal/auth"
	"github.com/kampkelly/favourite-things/internal/config"
	"github.com/kampkelly/favourite-things/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// jwtManager defines the token issuance interface needed by the auth service.
type jwtManager interface {
	GenerateToken(identity auth.Identity) (string, error)
}

// Service implements signup and signin.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
		cfg:   cfg,
	}
}

func (s *Service) issueToken(user *domain.User) (*AuthResult, error) {
	token, err := s.jwt.GenerateToken(auth.Identity{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: user}, nil
}

// Package user implements the user detail use case: the caller's profile
// together with their audit trail.
package user

import (
	"context"
	"log/slog"

	"github.com/kampkelly/favourite-things/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type auditRepo interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.AuditLog, error)
}

// Service provides user detail operations.
type Service struct {
	users userRepo
	audit auditRepo
	log   *slog.Logger
}

// NewService creates a new User service.
func NewService(log *slog.Logger, users userRepo, audit auditRepo) *Service {
	return &Service{
		users: users,
		audit: audit,
		log:   log.With("service", "user"),
	}
}

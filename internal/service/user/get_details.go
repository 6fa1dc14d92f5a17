package user

import (
	"context"
	"fmt"

	"github.com/kampkelly/favourite-things/internal/domain"
	"github.com/kampkelly/favourite-things/pkg/ctxutil"
)

// Details is the caller's profile plus their audit trail, newest first.
type Details struct {
	User      *domain.User
	AuditLogs []domain.AuditLog
}

// GetDetails returns the authenticated user's details.
// Returns ErrUnauthorized if no identity is found in context.
func (s *Service) GetDetails(ctx context.Context) (*Details, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("user.GetDetails: %w", err)
	}

	logs, err := s.audit.ListByUser(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("user.GetDetails list audit logs: %w", err)
	}

	return &Details{User: u, AuditLogs: logs}, nil
}

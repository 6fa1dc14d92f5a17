package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kampkelly/favourite-things/internal/domain"
	"github.com/kampkelly/favourite-things/pkg/ctxutil"
)

// CreateCategory creates a new category and records the action in the
// caller's audit log. The insert and the audit write share a transaction,
// so a failed audit write rolls the category back.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	var created *domain.Category
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.categories.Create(txCtx, name)
		if createErr != nil {
			if errors.Is(createErr, domain.ErrAlreadyExists) {
				return domain.ErrCategoryExists
			}
			return fmt.Errorf("create category: %w", createErr)
		}

		message := fmt.Sprintf("You created a category: '%s'", name)
		if _, auditErr := s.audit.Log(txCtx, identity.ID, message); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category created",
		slog.Int64("user_id", identity.ID),
		slog.Int64("category_id", created.ID),
		slog.String("name", name),
	)

	return created, nil
}

package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kampkelly/favourite-things/internal/domain"
	"github.com/kampkelly/favourite-things/pkg/ctxutil"
)

// DeleteCategory deletes a category and records the action in the caller's
// audit log, returning the deleted category's prior values. A category with
// favorite things cannot be deleted; the repository's conditional delete
// checks and deletes in one statement so a concurrently added favorite
// cannot be orphaned.
func (s *Service) DeleteCategory(ctx context.Context, input DeleteCategoryInput) (*domain.Category, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var deleted *domain.Category
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.categories.GetByID(txCtx, input.ID)
		if getErr != nil {
			if errors.Is(getErr, domain.ErrNotFound) {
				return domain.ErrCategoryNotFound
			}
			return fmt.Errorf("get category: %w", getErr)
		}

		ok, delErr := s.categories.DeleteIfNoFavorites(txCtx, input.ID)
		if delErr != nil {
			if errors.Is(delErr, domain.ErrNotFound) {
				return domain.ErrCategoryNotFound
			}
			return fmt.Errorf("delete category: %w", delErr)
		}
		if !ok {
			return domain.ErrCategoryHasFavorites
		}

		message := fmt.Sprintf("You deleted the category: '%s'", current.Name)
		if _, auditErr := s.audit.Log(txCtx, identity.ID, message); auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		deleted = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category deleted",
		slog.Int64("user_id", identity.ID),
		slog.Int64("category_id", deleted.ID),
		slog.String("name", deleted.Name),
	)

	return deleted, nil
}

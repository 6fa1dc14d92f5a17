package category

import (
	"context"
	"fmt"

	"github.com/kampkelly/favourite-things/internal/domain"
	"github.com/kampkelly/favourite-things/pkg/ctxutil"
)

// ListCategories returns every category ordered by id ascending.
// The catalog is shared: all authenticated users see the same list.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

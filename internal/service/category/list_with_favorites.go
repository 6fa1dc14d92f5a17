package category

import (
	"context"
	"fmt"

	"github.com/kampkelly/favourite-things/internal/domain"
	"github.com/kampkelly/favourite-things/pkg/ctxutil"
)

// ListWithFavorites returns the categories holding at least one of the
// caller's favorite things, each with its favorites ordered by ranking.
// Categories where the caller has nothing are omitted.
func (s *Service) ListWithFavorites(ctx context.Context) ([]domain.CategoryResponse, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	favorites, err := s.favorites.ListByUser(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	// Favorites arrive ordered by (category_id, ranking); grouping keeps
	// the ranking order within each category.
	byCategory := make(map[int64][]domain.FavoriteThing, len(categories))
	for _, f := range favorites {
		byCategory[f.CategoryID] = append(byCategory[f.CategoryID], f)
	}

	result := make([]domain.CategoryResponse, 0, len(byCategory))
	for _, c := range categories {
		things, ok := byCategory[c.ID]
		if !ok {
			continue
		}
		result = append(result, domain.CategoryResponse{
			ID:             c.ID,
			Name:           c.Name,
			FavoriteThings: things,
		})
	}

	return result, nil
}

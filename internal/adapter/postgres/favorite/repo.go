// Package favorite implements read access to favorite things.
// This service never creates or mutates favorite things; it only reads
// them to build per-category listings and to guard category deletion.
package favorite

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kampkelly/favourite-things/internal/adapter/postgres"
	"github.com/kampkelly/favourite-things/internal/domain"
)

// Repo provides read-only favorite thing queries backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

// New creates a new favorite thing repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const favoriteColumns = "id, name, ranking, category_id, user_id, created_at, updated_at"

// ListByUser returns all favorite things owned by a user, ordered by
// category then ranking so callers can group them without re-sorting.
// Returns an empty slice (not nil) when the user has none.
func (r *Repo) ListByUser(ctx context.Context, userID int64) ([]domain.FavoriteThing, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.sb.
		Select(favoriteColumns).
		From("favorite_things").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("category_id", "ranking").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list favorites query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list favorites by user: %w", err)
	}
	defer rows.Close()

	result, err := scanFavorites(rows)
	if err != nil {
		return nil, fmt.Errorf("list favorites by user: %w", err)
	}

	return result, nil
}

// ListByUserAndCategory returns a user's favorite things within one category,
// ordered by ranking ascending.
func (r *Repo) ListByUserAndCategory(ctx context.Context, userID, categoryID int64) ([]domain.FavoriteThing, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.sb.
		Select(favoriteColumns).
		From("favorite_things").
		Where(sq.Eq{"user_id": userID, "category_id": categoryID}).
		OrderBy("ranking").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list favorites by category query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list favorites by category: %w", err)
	}
	defer rows.Close()

	result, err := scanFavorites(rows)
	if err != nil {
		return nil, fmt.Errorf("list favorites by category: %w", err)
	}

	return result, nil
}

// CountByCategory returns the number of favorite things in a category,
// across all users.
func (r *Repo) CountByCategory(ctx context.Context, categoryID int64) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.sb.
		Select("count(*)").
		From("favorite_things").
		Where(sq.Eq{"category_id": categoryID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count favorites query: %w", err)
	}

	var count int
	if err := querier.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count favorites by category: %w", err)
	}

	return count, nil
}

func scanFavorites(rows pgx.Rows) ([]domain.FavoriteThing, error) {
	var result []domain.FavoriteThing
	for rows.Next() {
		var f domain.FavoriteThing
		if err := rows.Scan(&f.ID, &f.Name, &f.Ranking, &f.CategoryID, &f.UserID, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.FavoriteThing{}
	}

	return result, nil
}

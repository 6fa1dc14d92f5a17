// Package category implements the Category repository using PostgreSQL.
// Categories are a global catalog shared across users; favorite things
// reference them via category_id with ON DELETE RESTRICT.
package category

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kampkelly/favourite-things/internal/adapter/postgres"
	"github.com/kampkelly/favourite-things/internal/domain"
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const categoryColumns = "id, name, created_at, updated_at"

// deleteIfNoFavoritesSQL deletes a category only when no favorite things
// reference it. The NOT EXISTS guard and the delete run as one statement,
// so a favorite inserted concurrently cannot slip between a check and the
// delete.
const deleteIfNoFavoritesSQL = `
DELETE FROM categories c
WHERE c.id = $1
  AND NOT EXISTS (
      SELECT 1 FROM favorite_things ft WHERE ft.category_id = c.id
  )`

// List returns all categories ordered by id ascending.
// Returns an empty slice (not nil) when there are no categories.
func (r *Repo) List(ctx context.Context) ([]domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.sb.
		Select(categoryColumns).
		From("categories").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list categories query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	result, err := scanCategories(rows)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return result, nil
}

// GetByID returns a category by primary key.
// Returns domain.ErrNotFound if the category does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.sb.
		Select(categoryColumns).
		From("categories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get category query: %w", err)
	}

	var c domain.Category
	err = querier.QueryRow(ctx, query, args...).
		Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}

	return &c, nil
}

// Create inserts a new category and returns the persisted row.
// Returns domain.ErrAlreadyExists if a category with the same name exists;
// the unique index on name is the only duplicate check.
func (r *Repo) Create(ctx context.Context, name string) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.sb.
		Insert("categories").
		Columns("name").
		Values(name).
		Suffix("RETURNING " + categoryColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create category query: %w", err)
	}

	var c domain.Category
	err = querier.QueryRow(ctx, query, args...).
		Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "category", 0)
	}

	return &c, nil
}

// DeleteIfNoFavorites removes a category unless favorite things reference it.
// Returns true when the row was deleted, false when it was left in place
// because favorites exist. Returns domain.ErrNotFound if the category does
// not exist at all.
func (r *Repo) DeleteIfNoFavorites(ctx context.Context, id int64) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteIfNoFavoritesSQL, id)
	if err != nil {
		return false, postgres.MapError(err, "category", id)
	}

	if tag.RowsAffected() > 0 {
		return true, nil
	}

	// Nothing deleted: either the category is missing or favorites block it.
	if _, err := r.GetByID(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}

func scanCategories(rows pgx.Rows) ([]domain.Category, error) {
	var result []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Category{}
	}

	return result, nil
}

// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kampkelly/favourite-things/internal/adapter/postgres"
	"github.com/kampkelly/favourite-things/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const userColumns = "id, name, email, password_hash, created_at, updated_at"

// Create inserts a new user and returns the persisted row.
// Returns domain.ErrAlreadyExists if the email is already registered;
// the unique index on email is the only duplicate check.
func (r *Repo) Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.sb.
		Insert("users").
		Columns("name", "email", "password_hash").
		Values(name, email, passwordHash).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create user query: %w", err)
	}

	var u domain.User
	err = querier.QueryRow(ctx, query, args...).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}

	return &u, nil
}

// GetByID returns a user by primary key.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.sb.
		Select(userColumns).
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user query: %w", err)
	}

	var u domain.User
	err = querier.QueryRow(ctx, query, args...).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return &u, nil
}

// GetByEmail returns a user by email. Lookup is case-insensitive; emails
// are stored lowercased but older rows may predate that rule.
// Returns domain.ErrNotFound if no user has this email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.sb.
		Select(userColumns).
		From("users").
		Where(sq.Eq{"lower(email)": strings.ToLower(email)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user by email query: %w", err)
	}

	var u domain.User
	err = querier.QueryRow(ctx, query, args...).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}

	return &u, nil
}

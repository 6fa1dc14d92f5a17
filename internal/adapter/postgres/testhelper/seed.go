package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kampkelly/favourite-things/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a bcrypt-shaped placeholder hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		Name:         "Test User " + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$" + suffix + "placeholderplaceholderplace",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedCategory creates a category with a unique name.
// Returns a filled domain.Category.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	cat := domain.Category{
		Name:      "category-" + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO categories (name, created_at, updated_at)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		cat.Name, cat.CreatedAt, cat.UpdatedAt,
	).Scan(&cat.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory insert category: %v", err)
	}

	return cat
}

// SeedFavoriteThing creates a favorite thing for the given user and category.
// Returns a filled domain.FavoriteThing.
func SeedFavoriteThing(t *testing.T, pool *pgxpool.Pool, userID, categoryID int64, ranking int) domain.FavoriteThing {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	ft := domain.FavoriteThing{
		Name:       "favorite-" + uniqueSuffix(),
		Ranking:    ranking,
		CategoryID: categoryID,
		UserID:     userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO favorite_things (name, ranking, category_id, user_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		ft.Name, ft.Ranking, ft.CategoryID, ft.UserID, ft.CreatedAt, ft.UpdatedAt,
	).Scan(&ft.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedFavoriteThing insert: %v", err)
	}

	return ft
}

// SeedAuditLog creates an audit log entry for the given user.
// Returns a filled domain.AuditLog.
func SeedAuditLog(t *testing.T, pool *pgxpool.Pool, userID int64, message string) domain.AuditLog {
	t.Helper()
	ctx := context.Background()

	log := domain.AuditLog{
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO audit_logs (user_id, message, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		log.UserID, log.Message, log.CreatedAt,
	).Scan(&log.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedAuditLog insert: %v", err)
	}

	return log
}

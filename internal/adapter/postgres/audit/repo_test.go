package audit_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kampkelly/favourite-things/internal/adapter/postgres/audit"
	"github.com/kampkelly/favourite-things/internal/adapter/postgres/testhelper"
)

func newRepo(t *testing.T) (*audit.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return audit.New(pool), pool
}

func TestRepo_Log(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)

	entry, err := repo.Log(ctx, user.ID, "You created a category: 'Books'")
	if err != nil {
		t.Fatalf("Log: unexpected error: %v", err)
	}

	if entry.ID == 0 {
		t.Error("expected non-zero audit log ID")
	}
	if entry.UserID != user.ID {
		t.Errorf("UserID mismatch: got %d, want %d", entry.UserID, user.ID)
	}
	if entry.Message != "You created a category: 'Books'" {
		t.Errorf("Message mismatch: got %q", entry.Message)
	}
	if entry.CreatedAt.IsZero() {
		t.Error("CreatedAt should not be zero")
	}
}

func TestRepo_ListByUser_NewestFirst(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)

	first, err := repo.Log(ctx, user.ID, "first action")
	if err != nil {
		t.Fatalf("Log first: %v", err)
	}
	second, err := repo.Log(ctx, user.ID, "second action")
	if err != nil {
		t.Fatalf("Log second: %v", err)
	}

	got, err := repo.ListByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListByUser: unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].ID != second.ID {
		t.Errorf("expected newest entry first: got id %d, want %d", got[0].ID, second.ID)
	}
	if got[1].ID != first.ID {
		t.Errorf("expected oldest entry last: got id %d, want %d", got[1].ID, first.ID)
	}
}

func TestRepo_ListByUser_OnlyOwnRows(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	other := testhelper.SeedUser(t, pool)

	mine, err := repo.Log(ctx, owner.ID, "mine")
	if err != nil {
		t.Fatalf("Log: %v", err)
	}
	if _, err := repo.Log(ctx, other.ID, "theirs"); err != nil {
		t.Fatalf("Log other: %v", err)
	}

	got, err := repo.ListByUser(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ListByUser: unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].ID != mine.ID {
		t.Errorf("got id %d, want %d", got[0].ID, mine.ID)
	}
}

func TestRepo_ListByUser_Empty(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)

	user := testhelper.SeedUser(t, pool)

	got, err := repo.ListByUser(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("ListByUser: unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected 0 entries, got %d", len(got))
	}
}

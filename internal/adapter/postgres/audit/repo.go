// Package audit implements the append-only audit log repository.
// Audit rows are written inside the same transaction as the mutation they
// describe, so a failed audit write fails the whole mutation.
package audit

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kampkelly/favourite-things/internal/adapter/postgres"
	"github.com/kampkelly/favourite-things/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

// New creates a new audit log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const auditColumns = "id, user_id, message, created_at"

// Log appends an audit entry for a user.
func (r *Repo) Log(ctx context.Context, userID int64, message string) (*domain.AuditLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.sb.
		Insert("audit_logs").
		Columns("user_id", "message").
		Values(userID, message).
		Suffix("RETURNING " + auditColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create audit log query: %w", err)
	}

	var a domain.AuditLog
	err = querier.QueryRow(ctx, query, args...).
		Scan(&a.ID, &a.UserID, &a.Message, &a.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "audit_log", 0)
	}

	return &a, nil
}

// ListByUser returns a user's audit entries, newest first.
// Returns an empty slice (not nil) when the user has no entries.
func (r *Repo) ListByUser(ctx context.Context, userID int64) ([]domain.AuditLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := r.sb.
		Select(auditColumns).
		From("audit_logs").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list audit logs query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	result, err := scanAuditLogs(rows)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}

	return result, nil
}

func scanAuditLogs(rows pgx.Rows) ([]domain.AuditLog, error) {
	var result []domain.AuditLog
	for rows.Next() {
		var a domain.AuditLog
		if err := rows.Scan(&a.ID, &a.UserID, &a.Message, &a.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.AuditLog{}
	}

	return result, nil
}

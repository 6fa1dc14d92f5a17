package domain

import "time"

// AuditLog is an append-only record of a mutation performed by a user.
// Entries are never updated or deleted.
type AuditLog struct {
	ID        int64
	UserID    int64
	Message   string
	CreatedAt time.Time
}

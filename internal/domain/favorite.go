package domain

import "time"

// FavoriteThing is an item a user has favorited within a category.
// Ranking establishes the per-user, per-category display order.
// This service only reads favorite things; their lifecycle is owned by the
// favorite-things resource.
type FavoriteThing struct {
	ID         int64
	Name       string
	Ranking    int
	CategoryID int64
	UserID     int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

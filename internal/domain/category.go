package domain

import "time"

// Category groups favorite things under a unique name.
// A category that still has favorite things cannot be deleted.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CategoryResponse is the read-time projection returned by the
// categories-and-favorites query: a category together with the requesting
// user's favorites in it, ordered by ranking. Categories where the user has
// no favorites are not represented at all.
type CategoryResponse struct {
	ID             int64
	Name           string
	FavoriteThings []FavoriteThing
}

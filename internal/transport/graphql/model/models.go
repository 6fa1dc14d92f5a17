// Package model holds the GraphQL types bound in gqlgen.yml.
package model

import "time"

type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type FavoriteThing struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Ranking    int64  `json:"ranking"`
	CategoryID int64  `json:"categoryId"`
}

type CategoryResponse struct {
	ID             int64            `json:"id"`
	Name           string           `json:"name"`
	FavoriteThings []*FavoriteThing `json:"favoriteThings"`
}

type AuditLog struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type User struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	AuditLogs []*AuditLog `json:"auditLogs"`
}

type AuthPayload struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

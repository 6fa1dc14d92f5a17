// Package resolver wires GraphQL operations to the service layer.
package resolver

import (
	"context"
	"log/slog"

	"github.com/kampkelly/favourite-things/internal/domain"
	authsvc "github.com/kampkelly/favourite-things/internal/service/auth"
	"github.com/kampkelly/favourite-things/internal/service/category"
	"github.com/kampkelly/favourite-things/internal/service/user"
)

// categoryService defines what the resolver needs from the Category service.
type categoryService interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListWithFavorites(ctx context.Context) ([]domain.CategoryResponse, error)
	CreateCategory(ctx context.Context, input category.CreateCategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, input category.DeleteCategoryInput) (*domain.Category, error)
}

// authService defines what the resolver needs from the Auth service.
type authService interface {
	SignUp(ctx context.Context, input authsvc.SignUpInput) (*authsvc.AuthResult, error)
	SignIn(ctx context.Context, input authsvc.SignInInput) (*authsvc.AuthResult, error)
}

// userService defines what the resolver needs from the User service.
type userService interface {
	GetDetails(ctx context.Context) (*user.Details, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	category categoryService
	auth     authService
	user     userService
	log      *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(
	log *slog.Logger,
	category categoryService,
	auth authService,
	user userService,
) *Resolver {
	return &Resolver{
		category: category,
		auth:     auth,
		user:     user,
		log:      log.With("component", "graphql"),
	}
}

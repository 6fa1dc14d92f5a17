package resolver

// This file will be automatically regenerated based on the schema, any resolver
// implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.86

import (
	"context"

	authsvc "github.com/kampkelly/favourite-things/internal/service/auth"
	"github.com/kampkelly/favourite-things/internal/service/category"
	"github.com/kampkelly/favourite-things/internal/transport/graphql/generated"
	"github.com/kampkelly/favourite-things/internal/transport/graphql/model"
)

// CreateCategory is the resolver for the createCategory field.
func (r *mutationResolver) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	created, err := r.category.CreateCategory(ctx, category.CreateCategoryInput{Name: name})
	if err != nil {
		return nil, err
	}
	return toModelCategory(created), nil
}

// DeleteCategory is the resolver for the deleteCategory field.
func (r *mutationResolver) DeleteCategory(ctx context.Context, id int64) (*model.Category, error) {
	deleted, err := r.category.DeleteCategory(ctx, category.DeleteCategoryInput{ID: id})
	if err != nil {
		return nil, err
	}
	return toModelCategory(deleted), nil
}

// SignupUser is the resolver for the signupUser field.
func (r *mutationResolver) SignupUser(ctx context.Context, name string, email string, password string) (*model.AuthPayload, error) {
	result, err := r.auth.SignUp(ctx, authsvc.SignUpInput{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	return &model.AuthPayload{
		Token: result.Token,
		User:  toModelUser(result.User, nil),
	}, nil
}

// SigninUser is the resolver for the signinUser field.
func (r *mutationResolver) SigninUser(ctx context.Context, email string, password string) (*model.AuthPayload, error) {
	result, err := r.auth.SignIn(ctx, authsvc.SignInInput{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	return &model.AuthPayload{
		Token: result.Token,
		User:  toModelUser(result.User, nil),
	}, nil
}

// AllCategories is the resolver for the allCategories field.
func (r *queryResolver) AllCategories(ctx context.Context) ([]*model.Category, error) {
	categories, err := r.category.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return toModelCategories(categories), nil
}

// GetCategoriesAndFavorites is the resolver for the getCategoriesAndFavorites field.
func (r *queryResolver) GetCategoriesAndFavorites(ctx context.Context) ([]*model.CategoryResponse, error) {
	responses, err := r.category.ListWithFavorites(ctx)
	if err != nil {
		return nil, err
	}
	return toModelCategoryResponses(responses), nil
}

// GetUserDetails is the resolver for the getUserDetails field.
func (r *queryResolver) GetUserDetails(ctx context.Context) (*model.User, error) {
	details, err := r.user.GetDetails(ctx)
	if err != nil {
		return nil, err
	}
	return toModelUserDetails(details), nil
}

// Mutation returns generated.MutationResolver implementation.
func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }

// Query returns generated.QueryResolver implementation.
func (r *Resolver) Query() generated.QueryResolver { return &queryResolver{r} }

type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }

package resolver

import (
	"context"
	"sync"

	"github.com/kampkelly/favourite-things/internal/domain"
	authsvc "github.com/kampkelly/favourite-things/internal/service/auth"
	"github.com/kampkelly/favourite-things/internal/service/category"
	"github.com/kampkelly/favourite-things/internal/service/user"
)

var _ categoryService = &categoryServiceMock{}

type categoryServiceMock struct {
	ListCategoriesFunc    func(ctx context.Context) ([]domain.Category, error)
	ListWithFavoritesFunc func(ctx context.Context) ([]domain.CategoryResponse, error)
	CreateCategoryFunc    func(ctx context.Context, input category.CreateCategoryInput) (*domain.Category, error)
	DeleteCategoryFunc    func(ctx context.Context, input category.DeleteCategoryInput) (*domain.Category, error)

	calls struct {
		CreateCategory []struct {
			Ctx   context.Context
			Input category.CreateCategoryInput
		}
		DeleteCategory []struct {
			Ctx   context.Context
			Input category.DeleteCategoryInput
		}
	}
	lock sync.RWMutex
}

func (mock *categoryServiceMock) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if mock.ListCategoriesFunc == nil {
		panic("categoryServiceMock.ListCategoriesFunc: method is nil but categoryService.ListCategories was just called")
	}
	return mock.ListCategoriesFunc(ctx)
}

func (mock *categoryServiceMock) ListWithFavorites(ctx context.Context) ([]domain.CategoryResponse, error) {
	if mock.ListWithFavoritesFunc == nil {
		panic("categoryServiceMock.ListWithFavoritesFunc: method is nil but categoryService.ListWithFavorites was just called")
	}
	return mock.ListWithFavoritesFunc(ctx)
}

func (mock *categoryServiceMock) CreateCategory(ctx context.Context, input category.CreateCategoryInput) (*domain.Category, error) {
	if mock.CreateCategoryFunc == nil {
		panic("categoryServiceMock.CreateCategoryFunc: method is nil but categoryService.CreateCategory was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateCategory = append(mock.calls.CreateCategory, struct {
		Ctx   context.Context
		Input category.CreateCategoryInput
	}{Ctx: ctx, Input: input})
	mock.lock.Unlock()
	return mock.CreateCategoryFunc(ctx, input)
}

func (mock *categoryServiceMock) CreateCategoryCalls() []struct {
	Ctx   context.Context
	Input category.CreateCategoryInput
} {
	mock.lock.RLock()
	calls := mock.calls.CreateCategory
	mock.lock.RUnlock()
	return calls
}

func (mock *categoryServiceMock) DeleteCategory(ctx context.Context, input category.DeleteCategoryInput) (*domain.Category, error) {
	if mock.DeleteCategoryFunc == nil {
		panic("categoryServiceMock.DeleteCategoryFunc: method is nil but categoryService.DeleteCategory was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteCategory = append(mock.calls.DeleteCategory, struct {
		Ctx   context.Context
		Input category.DeleteCategoryInput
	}{Ctx: ctx, Input: input})
	mock.lock.Unlock()
	return mock.DeleteCategoryFunc(ctx, input)
}

func (mock *categoryServiceMock) DeleteCategoryCalls() []struct {
	Ctx   context.Context
	Input category.DeleteCategoryInput
} {
	mock.lock.RLock()
	calls := mock.calls.DeleteCategory
	mock.lock.RUnlock()
	return calls
}

var _ authService = &authServiceMock{}

type authServiceMock struct {
	SignUpFunc func(ctx context.Context, input authsvc.SignUpInput) (*authsvc.AuthResult, error)
	SignInFunc func(ctx context.Context, input authsvc.SignInInput) (*authsvc.AuthResult, error)
}

func (mock *authServiceMock) SignUp(ctx context.Context, input authsvc.SignUpInput) (*authsvc.AuthResult, error) {
	if mock.SignUpFunc == nil {
		panic("authServiceMock.SignUpFunc: method is nil but authService.SignUp was just called")
	}
	return mock.SignUpFunc(ctx, input)
}

func (mock *authServiceMock) SignIn(ctx context.Context, input authsvc.SignInInput) (*authsvc.AuthResult, error) {
	if mock.SignInFunc == nil {
		panic("authServiceMock.SignInFunc: method is nil but authService.SignIn was just called")
	}
	return mock.SignInFunc(ctx, input)
}

var _ userService = &userServiceMock{}

type userServiceMock struct {
	GetDetailsFunc func(ctx context.Context) (*user.Details, error)
}

func (mock *userServiceMock) GetDetails(ctx context.Context) (*user.Details, error) {
	if mock.GetDetailsFunc == nil {
		panic("userServiceMock.GetDetailsFunc: method is nil but userService.GetDetails was just called")
	}
	return mock.GetDetailsFunc(ctx)
}

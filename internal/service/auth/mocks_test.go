package auth

import (
	"context"
	"sync"

	"github.com/kampkelly/favourite-things/internal/auth"
	"github.com/kampkelly/favourite-things/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc     func(ctx context.Context, name, email, passwordHash string) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)

	calls struct {
		Create []struct {
			Ctx          context.Context
			Name         string
			Email        string
			PasswordHash string
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx          context.Context
		Name         string
		Email        string
		PasswordHash string
	}{Ctx: ctx, Name: name, Email: email, PasswordHash: passwordHash})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, name, email, passwordHash)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx          context.Context
	Name         string
	Email        string
	PasswordHash string
} {
	mock.lock.RLock()
	calls := mock.calls.Create
	mock.lock.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email})
	mock.lock.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lock.RLock()
	calls := mock.calls.GetByEmail
	mock.lock.RUnlock()
	return calls
}

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateTokenFunc func(identity auth.Identity) (string, error)

	calls struct {
		GenerateToken []struct {
			Identity auth.Identity
		}
	}
	lock sync.RWMutex
}

func (mock *jwtManagerMock) GenerateToken(identity auth.Identity) (string, error) {
	if mock.GenerateTokenFunc == nil {
		panic("jwtManagerMock.GenerateTokenFunc: method is nil but jwtManager.GenerateToken was just called")
	}
	mock.lock.Lock()
	mock.calls.GenerateToken = append(mock.calls.GenerateToken, struct {
		Identity auth.Identity
	}{Identity: identity})
	mock.lock.Unlock()
	return mock.GenerateTokenFunc(identity)
}

func (mock *jwtManagerMock) GenerateTokenCalls() []struct {
	Identity auth.Identity
} {
	mock.lock.RLock()
	calls := mock.calls.GenerateToken
	mock.lock.RUnlock()
	return calls
}

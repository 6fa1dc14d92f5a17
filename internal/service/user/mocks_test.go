package user

import (
	"context"
	"sync"

	"github.com/kampkelly/favourite-things/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lock.RLock()
	calls := mock.calls.GetByID
	mock.lock.RUnlock()
	return calls
}

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID int64) ([]domain.AuditLog, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID int64
		}
	}
	lock sync.RWMutex
}

func (mock *auditRepoMock) ListByUser(ctx context.Context, userID int64) ([]domain.AuditLog, error) {
	if mock.ListByUserFunc == nil {
		panic("auditRepoMock.ListByUserFunc: method is nil but auditRepo.ListByUser was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID})
	mock.lock.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *auditRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lock.RLock()
	calls := mock.calls.ListByUser
	mock.lock.RUnlock()
	return calls
}

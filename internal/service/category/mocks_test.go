package category

import (
	"context"
	"sync"

	"github.com/kampkelly/favourite-things/internal/domain"
)

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	ListFunc                func(ctx context.Context) ([]domain.Category, error)
	GetByIDFunc             func(ctx context.Context, id int64) (*domain.Category, error)
	CreateFunc              func(ctx context.Context, name string) (*domain.Category, error)
	DeleteIfNoFavoritesFunc func(ctx context.Context, id int64) (bool, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		Create []struct {
			Ctx  context.Context
			Name string
		}
		DeleteIfNoFavorites []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lock sync.RWMutex
}

func (mock *categoryRepoMock) List(ctx context.Context) ([]domain.Category, error) {
	if mock.ListFunc == nil {
		panic("categoryRepoMock.ListFunc: method is nil but categoryRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Ctx context.Context
	}{Ctx: ctx})
	mock.lock.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *categoryRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lock.RLock()
	calls := mock.calls.List
	mock.lock.RUnlock()
	return calls
}

func (mock *categoryRepoMock) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	if mock.GetByIDFunc == nil {
		panic("categoryRepoMock.GetByIDFunc: method is nil but categoryRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *categoryRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lock.RLock()
	calls := mock.calls.GetByID
	mock.lock.RUnlock()
	return calls
}

func (mock *categoryRepoMock) Create(ctx context.Context, name string) (*domain.Category, error) {
	if mock.CreateFunc == nil {
		panic("categoryRepoMock.CreateFunc: method is nil but categoryRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, name)
}

func (mock *categoryRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lock.RLock()
	calls := mock.calls.Create
	mock.lock.RUnlock()
	return calls
}

func (mock *categoryRepoMock) DeleteIfNoFavorites(ctx context.Context, id int64) (bool, error) {
	if mock.DeleteIfNoFavoritesFunc == nil {
		panic("categoryRepoMock.DeleteIfNoFavoritesFunc: method is nil but categoryRepo.DeleteIfNoFavorites was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteIfNoFavorites = append(mock.calls.DeleteIfNoFavorites, struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id})
	mock.lock.Unlock()
	return mock.DeleteIfNoFavoritesFunc(ctx, id)
}

func (mock *categoryRepoMock) DeleteIfNoFavoritesCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lock.RLock()
	calls := mock.calls.DeleteIfNoFavorites
	mock.lock.RUnlock()
	return calls
}

var _ favoriteRepo = &favoriteRepoMock{}

type favoriteRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID int64) ([]domain.FavoriteThing, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID int64
		}
	}
	lock sync.RWMutex
}

func (mock *favoriteRepoMock) ListByUser(ctx context.Context, userID int64) ([]domain.FavoriteThing, error) {
	if mock.ListByUserFunc == nil {
		panic("favoriteRepoMock.ListByUserFunc: method is nil but favoriteRepo.ListByUser was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, struct {
		Ctx    context.Context
		UserID int64
	}{Ctx: ctx, UserID: userID})
	mock.lock.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *favoriteRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	mock.lock.RLock()
	calls := mock.calls.ListByUser
	mock.lock.RUnlock()
	return calls
}

var _ auditLogger = &auditLoggerMock{}

type auditLoggerMock struct {
	LogFunc func(ctx context.Context, userID int64, message string) (*domain.AuditLog, error)

	calls struct {
		Log []struct {
			Ctx     context.Context
			UserID  int64
			Message string
		}
	}
	lock sync.RWMutex
}

func (mock *auditLoggerMock) Log(ctx context.Context, userID int64, message string) (*domain.AuditLog, error) {
	if mock.LogFunc == nil {
		panic("auditLoggerMock.LogFunc: method is nil but auditLogger.Log was just called")
	}
	mock.lock.Lock()
	mock.calls.Log = append(mock.calls.Log, struct {
		Ctx     context.Context
		UserID  int64
		Message string
	}{Ctx: ctx, UserID: userID, Message: message})
	mock.lock.Unlock()
	return mock.LogFunc(ctx, userID, message)
}

func (mock *auditLoggerMock) LogCalls() []struct {
	Ctx     context.Context
	UserID  int64
	Message string
} {
	mock.lock.RLock()
	calls := mock.calls.Log
	mock.lock.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
		}
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lock.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct {
		Ctx context.Context
	}{Ctx: ctx})
	mock.lock.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
} {
	mock.lock.RLock()
	calls := mock.calls.RunInTx
	mock.lock.RUnlock()
	return calls
}

// Package category implements the category catalog use cases:
// listing categories, listing them together with the caller's favorite
// things, and the audited create/delete mutations.
package category

import (
	"context"
	"log/slog"

	"github.com/kampkelly/favourite-things/internal/domain"
)

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, name string) (*domain.Category, error)
	DeleteIfNoFavorites(ctx context.Context, id int64) (bool, error)
}

type favoriteRepo interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.FavoriteThing, error)
}

type auditLogger interface {
	Log(ctx context.Context, userID int64, message string) (*domain.AuditLog, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides category catalog operations.
type Service struct {
	categories categoryRepo
	favorites  favoriteRepo
	audit      auditLogger
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Category service.
func NewService(
	log *slog.Logger,
	categories categoryRepo,
	favorites favoriteRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		categories: categories,
		favorites:  favorites,
		audit:      audit,
		tx:         tx,
		log:        log.With("service", "category"),
	}
}

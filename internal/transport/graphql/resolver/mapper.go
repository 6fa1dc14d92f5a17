package resolver

import (
	"github.com/kampkelly/favourite-things/internal/domain"
	"github.com/kampkelly/favourite-things/internal/service/user"
	"github.com/kampkelly/favourite-things/internal/transport/graphql/model"
)

func toModelCategory(c *domain.Category) *model.Category {
	return &model.Category{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toModelCategories(categories []domain.Category) []*model.Category {
	result := make([]*model.Category, len(categories))
	for i := range categories {
		result[i] = toModelCategory(&categories[i])
	}
	return result
}

func toModelFavoriteThing(f *domain.FavoriteThing) *model.FavoriteThing {
	return &model.FavoriteThing{
		ID:         f.ID,
		Name:       f.Name,
		Ranking:    int64(f.Ranking),
		CategoryID: f.CategoryID,
	}
}

func toModelCategoryResponses(responses []domain.CategoryResponse) []*model.CategoryResponse {
	result := make([]*model.CategoryResponse, len(responses))
	for i := range responses {
		r := &responses[i]
		things := make([]*model.FavoriteThing, len(r.FavoriteThings))
		for j := range r.FavoriteThings {
			things[j] = toModelFavoriteThing(&r.FavoriteThings[j])
		}
		result[i] = &model.CategoryResponse{
			ID:             r.ID,
			Name:           r.Name,
			FavoriteThings: things,
		}
	}
	return result
}

func toModelAuditLogs(logs []domain.AuditLog) []*model.AuditLog {
	result := make([]*model.AuditLog, len(logs))
	for i, l := range logs {
		result[i] = &model.AuditLog{
			ID:        l.ID,
			Message:   l.Message,
			CreatedAt: l.CreatedAt,
		}
	}
	return result
}

func toModelUser(u *domain.User, logs []domain.AuditLog) *model.User {
	return &model.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		AuditLogs: toModelAuditLogs(logs),
	}
}

func toModelUserDetails(d *user.Details) *model.User {
	return toModelUser(d.User, d.AuditLogs)
}

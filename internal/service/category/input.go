package category

import (
	"strings"

	"github.com/kampkelly/favourite-things/internal/domain"
)

// CreateCategoryInput holds the parameters for creating a category.
type CreateCategoryInput struct {
	Name string
}

// Validate rejects names that are empty after trimming.
func (i CreateCategoryInput) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return domain.ErrCategoryNameEmpty
	}
	return nil
}

// DeleteCategoryInput holds the parameters for deleting a category.
type DeleteCategoryInput struct {
	ID int64
}

// Validate checks the id is a plausible primary key.
func (i DeleteCategoryInput) Validate() error {
	if i.ID <= 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

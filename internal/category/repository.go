package category

import (
	"context"

	"github.com/fekuna/omnipos-marketplace-service/internal/category/dto"
	"github.com/fekuna/omnipos-marketplace-service/internal/model"
)

type Repository interface {
	// FindAll returns options in page order; counts are left at zero.
	FindAll(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, error)
}

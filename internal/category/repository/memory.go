package repository

import (
	"context"

	"github.com/fekuna/omnipos-marketplace-service/internal/category/dto"
	"github.com/fekuna/omnipos-marketplace-service/internal/fixture"
	"github.com/fekuna/omnipos-marketplace-service/internal/model"
)

type MemoryRepository struct {
	options []model.Category
}

func NewMemoryRepository(c *fixture.Catalog) *MemoryRepository {
	return &MemoryRepository{options: c.Categories}
}

func (r *MemoryRepository) FindAll(ctx context.Context, f *dto.CategoryFilters) ([]model.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []model.Category
	for _, c := range r.options {
		if f.Kind != "" && c.Kind != f.Kind {
			continue
		}
		if f.Facet != "" && c.Facet != f.Facet {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

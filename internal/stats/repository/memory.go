package repository

import (
	"context"

	"github.com/fekuna/omnipos-marketplace-service/internal/fixture"
	"github.com/fekuna/omnipos-marketplace-service/internal/model"
)

type MemoryRepository struct {
	stats []model.Stat
}

func NewMemoryRepository(c *fixture.Catalog) *MemoryRepository {
	return &MemoryRepository{stats: c.Stats}
}

func (r *MemoryRepository) FindAll(ctx context.Context) ([]model.Stat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]model.Stat(nil), r.stats...), nil
}

package stats

import (
	"context"

	"github.com/fekuna/omnipos-marketplace-service/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Stat, error)
}

package listing

import (
	"context"

	"github.com/fekuna/omnipos-marketplace-service/internal/model"
)

type Repository interface {
	Businesses(ctx context.Context) ([]*model.Business, error)
	Products(ctx context.Context) ([]*model.Product, error)
	BusinessByID(ctx context.Context, id string) (*model.Business, error)
	ProductByID(ctx context.Context, id string) (*model.Product, error)
}

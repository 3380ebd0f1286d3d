package listing

import (
	"context"

	"github.com/pkg/errors"

	"github.com/fekuna/omnipos-marketplace-service/internal/listing/dto"
	"github.com/fekuna/omnipos-marketplace-service/internal/model"
	"github.com/fekuna/omnipos-marketplace-service/internal/query"
)

var ErrNotFound = errors.New("listing not found")

type UseCase interface {
	ListBusinesses(ctx context.Context, filters *dto.ListingFilters) (query.Result, error)
	ListProducts(ctx context.Context, filters *dto.ListingFilters) (query.Result, error)
	GetBusiness(ctx context.Context, id string) (*model.Business, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)

	// Facets summarises one kind, or the whole catalog when kind is empty.
	Facets(ctx context.Context, kind model.Kind) (query.Facets, error)
}

package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-marketplace-service/internal/listing"
	"github.com/fekuna/omnipos-marketplace-service/internal/listing/dto"
	"github.com/fekuna/omnipos-marketplace-service/internal/logger"
	"github.com/fekuna/omnipos-marketplace-service/internal/model"
	"github.com/fekuna/omnipos-marketplace-service/internal/query"
)

// Options are the page defaults applied when a request leaves them out.
type Options struct {
	BusinessSort query.SortKey
	ProductSort  query.SortKey
	PriceRange   *query.PriceRange // products only; nil means no default range
}

type listingUseCase struct {
	repo   listing.Repository
	opts   Options
	logger logger.ZapLogger
}

func NewListingUseCase(repo listing.Repository, opts Options, log logger.ZapLogger) listing.UseCase {
	return &listingUseCase{
		repo:   repo,
		opts:   opts,
		logger: log,
	}
}

func (uc *listingUseCase) ListBusinesses(ctx context.Context, filters *dto.ListingFilters) (query.Result, error) {
	businesses, err := uc.repo.Businesses(ctx)
	if err != nil {
		return query.Result{}, err
	}
	items := make([]model.Listable, len(businesses))
	for i, b := range businesses {
		items[i] = b
	}

	spec := filtersOrEmpty(filters).Spec(nil)
	if spec.SortKey == "" {
		spec.SortKey = uc.opts.BusinessSort
	}
	return uc.run(model.KindBusiness, items, spec), nil
}

func (uc *listingUseCase) ListProducts(ctx context.Context, filters *dto.ListingFilters) (query.Result, error) {
	products, err := uc.repo.Products(ctx)
	if err != nil {
		return query.Result{}, err
	}
	items := make([]model.Listable, len(products))
	for i, p := range products {
		items[i] = p
	}

	spec := filtersOrEmpty(filters).Spec(uc.opts.PriceRange)
	if spec.SortKey == "" {
		spec.SortKey = uc.opts.ProductSort
	}
	return uc.run(model.KindProduct, items, spec), nil
}

func (uc *listingUseCase) run(kind model.Kind, items []model.Listable, spec query.Spec) query.Result {
	res := query.Run(items, spec)
	if res.Fallback {
		uc.logger.Warn("unknown sort key, keeping input order",
			zap.String("kind", string(kind)),
			zap.String("sort", string(spec.SortKey)),
		)
	}
	uc.logger.Debug("listing query",
		zap.String("kind", string(kind)),
		zap.Int("matched", res.Matched),
		zap.Int("total", res.Total),
		zap.String("sort", string(res.Sort)),
	)
	return res
}

func (uc *listingUseCase) GetBusiness(ctx context.Context, id string) (*model.Business, error) {
	return uc.repo.BusinessByID(ctx, id)
}

func (uc *listingUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return uc.repo.ProductByID(ctx, id)
}

func (uc *listingUseCase) Facets(ctx context.Context, kind model.Kind) (query.Facets, error) {
	var items []model.Listable
	if kind == "" || kind == model.KindBusiness {
		businesses, err := uc.repo.Businesses(ctx)
		if err != nil {
			return query.Facets{}, err
		}
		for _, b := range businesses {
			items = append(items, b)
		}
	}
	if kind == "" || kind == model.KindProduct {
		products, err := uc.repo.Products(ctx)
		if err != nil {
			return query.Facets{}, err
		}
		for _, p := range products {
			items = append(items, p)
		}
	}
	return query.Summarize(items), nil
}

func filtersOrEmpty(f *dto.ListingFilters) *dto.ListingFilters {
	if f == nil {
		return &dto.ListingFilters{}
	}
	return f
}

package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-marketplace-service/internal/category"
	"github.com/fekuna/omnipos-marketplace-service/internal/category/dto"
	"github.com/fekuna/omnipos-marketplace-service/internal/listing"
	"github.com/fekuna/omnipos-marketplace-service/internal/logger"
	"github.com/fekuna/omnipos-marketplace-service/internal/model"
	"github.com/fekuna/omnipos-marketplace-service/internal/query"
)

type categoryUseCase struct {
	repo     category.Repository
	listings listing.Repository
	logger   logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, listings listing.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:     repo,
		listings: listings,
		logger:   log,
	}
}

// ListCategories returns the sidebar options of one page with the number of
// listings each option would match. The "all" option counts every listing.
func (uc *categoryUseCase) ListCategories(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, error) {
	options, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, err
	}

	items, err := uc.items(ctx, filters.Kind)
	if err != nil {
		return nil, err
	}

	for i := range options {
		var spec query.Spec
		switch options[i].Facet {
		case model.FacetLocation:
			spec.Location = options[i].FilterValue()
		default:
			spec.Category = options[i].FilterValue()
		}
		pred := query.BuildPredicate(spec)
		for _, item := range items {
			if pred(item) {
				options[i].Count++
			}
		}
	}

	uc.logger.Debug("category counts",
		zap.String("kind", string(filters.Kind)),
		zap.Int("options", len(options)),
		zap.Int("listings", len(items)),
	)
	return options, nil
}

func (uc *categoryUseCase) items(ctx context.Context, kind model.Kind) ([]model.Listable, error) {
	var items []model.Listable
	switch kind {
	case model.KindBusiness:
		businesses, err := uc.listings.Businesses(ctx)
		if err != nil {
			return nil, err
		}
		for _, b := range businesses {
			items = append(items, b)
		}
	case model.KindProduct:
		products, err := uc.listings.Products(ctx)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			items = append(items, p)
		}
	}
	return items, nil
}

package handler

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/fekuna/omnipos-marketplace-service/internal/category"
	"github.com/fekuna/omnipos-marketplace-service/internal/category/dto"
	"github.com/fekuna/omnipos-marketplace-service/internal/logger"
	"github.com/fekuna/omnipos-marketplace-service/internal/model"
	"github.com/fekuna/omnipos-marketplace-service/internal/rpc"
	"github.com/fekuna/omnipos-marketplace-service/internal/rpcctx"
)

var _ rpc.CategoryServiceServer = (*CategoryHandler)(nil)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) ListCategories(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var filters dto.CategoryFilters
	if err := rpc.Decode(req, &filters); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	switch filters.Kind {
	case model.KindBusiness, model.KindProduct:
	default:
		return nil, status.Errorf(codes.InvalidArgument, "kind must be %q or %q", model.KindBusiness, model.KindProduct)
	}
	switch filters.Facet {
	case "", model.FacetCategory, model.FacetLocation:
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unknown facet %q", filters.Facet)
	}

	cats, err := h.uc.ListCategories(ctx, &filters)
	if err != nil {
		h.logger.Error("failed to list categories", zap.String("request_id", rpcctx.RequestID(ctx)), zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}

	resp := &dto.ListCategoriesResponse{
		Kind:       string(filters.Kind),
		Categories: []*dto.CategoryView{},
		Locations:  []*dto.CategoryView{},
	}
	for _, c := range cats {
		v := mapModelToView(c)
		if c.Facet == model.FacetLocation {
			resp.Locations = append(resp.Locations, v)
		} else {
			resp.Categories = append(resp.Categories, v)
		}
	}

	out, err := rpc.Encode(resp)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func mapModelToView(c model.Category) *dto.CategoryView {
	return &dto.CategoryView{
		ID:    c.ID,
		Name:  c.Name,
		Value: c.FilterValue(),
		Facet: string(c.Facet),
		Count: c.Count,
	}
}

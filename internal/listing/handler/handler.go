package handler

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/fekuna/omnipos-marketplace-service/internal/format"
	"github.com/fekuna/omnipos-marketplace-service/internal/listing"
	"github.com/fekuna/omnipos-marketplace-service/internal/listing/dto"
	"github.com/fekuna/omnipos-marketplace-service/internal/logger"
	"github.com/fekuna/omnipos-marketplace-service/internal/model"
	"github.com/fekuna/omnipos-marketplace-service/internal/query"
	"github.com/fekuna/omnipos-marketplace-service/internal/rpc"
	"github.com/fekuna/omnipos-marketplace-service/internal/rpcctx"
)

var _ rpc.ListingServiceServer = (*ListingHandler)(nil)

type ListingHandler struct {
	uc       listing.UseCase
	fmt      *format.Formatter
	currency string // used for products without their own currency
	logger   logger.ZapLogger
}

func NewListingHandler(uc listing.UseCase, f *format.Formatter, currency string, log logger.ZapLogger) *ListingHandler {
	return &ListingHandler{
		uc:       uc,
		fmt:      f,
		currency: currency,
		logger:   log,
	}
}

func (h *ListingHandler) ListBusinesses(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var filters dto.ListingFilters
	if err := rpc.Decode(req, &filters); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	res, err := h.uc.ListBusinesses(ctx, &filters)
	if err != nil {
		return nil, h.toStatus(ctx, "failed to list businesses", err)
	}
	return h.encode(ctx, h.listResponse(res))
}

func (h *ListingHandler) ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var filters dto.ListingFilters
	if err := rpc.Decode(req, &filters); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	res, err := h.uc.ListProducts(ctx, &filters)
	if err != nil {
		return nil, h.toStatus(ctx, "failed to list products", err)
	}
	return h.encode(ctx, h.listResponse(res))
}

func (h *ListingHandler) GetBusiness(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := decodeID(req)
	if err != nil {
		return nil, err
	}

	b, err := h.uc.GetBusiness(ctx, id)
	if err != nil {
		return nil, h.toStatus(ctx, "failed to get business", err)
	}
	return h.encode(ctx, h.businessView(b))
}

func (h *ListingHandler) GetProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := decodeID(req)
	if err != nil {
		return nil, err
	}

	p, err := h.uc.GetProduct(ctx, id)
	if err != nil {
		return nil, h.toStatus(ctx, "failed to get product", err)
	}
	return h.encode(ctx, h.productView(p))
}

func (h *ListingHandler) GetFacets(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in dto.FacetsRequest
	if err := rpc.Decode(req, &in); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	kind := model.Kind(in.Kind)
	switch kind {
	case "", model.KindBusiness, model.KindProduct:
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unknown kind %q", in.Kind)
	}

	facets, err := h.uc.Facets(ctx, kind)
	if err != nil {
		return nil, h.toStatus(ctx, "failed to summarise listings", err)
	}
	return h.encode(ctx, facets)
}

func decodeID(req *structpb.Struct) (string, error) {
	var in dto.IDRequest
	if err := rpc.Decode(req, &in); err != nil {
		return "", status.Error(codes.InvalidArgument, err.Error())
	}
	if in.ID == "" {
		return "", status.Error(codes.InvalidArgument, "id is required")
	}
	return in.ID, nil
}

func (h *ListingHandler) toStatus(ctx context.Context, msg string, err error) error {
	if errors.Is(err, listing.ErrNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	h.logger.Error(msg, zap.String("request_id", rpcctx.RequestID(ctx)), zap.Error(err))
	return status.Error(codes.Internal, err.Error())
}

func (h *ListingHandler) encode(ctx context.Context, v any) (*structpb.Struct, error) {
	out, err := rpc.Encode(v)
	if err != nil {
		h.logger.Error("failed to encode response", zap.String("request_id", rpcctx.RequestID(ctx)), zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func (h *ListingHandler) listResponse(res query.Result) *dto.ListResponse {
	items := make([]any, 0, len(res.Items))
	for _, item := range res.Items {
		switch v := item.(type) {
		case *model.Business:
			items = append(items, h.businessView(v))
		case *model.Product:
			items = append(items, h.productView(v))
		}
	}
	return &dto.ListResponse{
		Items:    items,
		Total:    res.Total,
		Matched:  res.Matched,
		Sort:     string(res.Sort),
		Fallback: res.Fallback,
	}
}

func (h *ListingHandler) businessView(b *model.Business) *dto.BusinessView {
	return &dto.BusinessView{
		ID:             b.ID,
		Kind:           string(model.KindBusiness),
		Name:           b.Name,
		Description:    b.Description,
		Category:       b.Category,
		Rating:         b.Rating,
		ReviewCount:    b.ReviewCount,
		ReviewLabel:    h.fmt.FormatCount(int64(b.ReviewCount)),
		Location:       b.Location,
		IsOpen:         b.IsOpen,
		Followers:      b.Followers,
		FollowersLabel: h.fmt.FormatCount(int64(b.Followers)),
		IsVerified:     b.IsVerified,
	}
}

func (h *ListingHandler) productView(p *model.Product) *dto.ProductView {
	code := p.Currency
	if code == "" {
		code = h.currency
	}

	v := &dto.ProductView{
		ID:              p.ID,
		Kind:            string(model.KindProduct),
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		PriceLabel:      h.priceLabel(p.Price, code),
		OriginalPrice:   p.OriginalPrice,
		DiscountPercent: p.DiscountPercent(),
		Currency:        code,
		Category:        p.Category,
		BusinessID:      p.BusinessID,
		BusinessName:    p.BusinessName,
		Location:        p.Location,
		InStock:         p.InStock,
		Rating:          p.Rating,
		ReviewCount:     p.ReviewCount,
		ReviewLabel:     h.fmt.FormatCount(int64(p.ReviewCount)),
		IsNew:           p.IsNew,
		IsFeatured:      p.IsFeatured,
	}
	if p.OriginalPrice != nil {
		v.OriginalPriceLabel = h.priceLabel(*p.OriginalPrice, code)
	}
	return v
}

// priceLabel falls back to a plain two-decimal amount for unknown currencies.
func (h *ListingHandler) priceLabel(amount float64, code string) string {
	label, err := h.fmt.FormatPrice(amount, code)
	if err != nil {
		h.logger.Warn("cannot format price", zap.String("currency", code), zap.Error(err))
		return h.fmt.FormatDecimal(amount, 2)
	}
	return label
}

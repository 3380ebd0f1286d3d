package handler

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/fekuna/omnipos-marketplace-service/internal/format"
	"github.com/fekuna/omnipos-marketplace-service/internal/logger"
	"github.com/fekuna/omnipos-marketplace-service/internal/rpc"
	"github.com/fekuna/omnipos-marketplace-service/internal/rpcctx"
	"github.com/fekuna/omnipos-marketplace-service/internal/stats"
	"github.com/fekuna/omnipos-marketplace-service/internal/stats/dto"
)

var _ rpc.StatsServiceServer = (*StatsHandler)(nil)

type StatsHandler struct {
	uc     stats.UseCase
	logger logger.ZapLogger
}

func NewStatsHandler(uc stats.UseCase, log logger.ZapLogger) *StatsHandler {
	return &StatsHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *StatsHandler) ListStats(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := rpc.Decode(req, &struct{}{}); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	views, err := h.uc.ListStats(ctx)
	if err != nil {
		return nil, h.toStatus(ctx, "failed to list stats", err)
	}
	return encode(&dto.StatsResponse{Stats: views})
}

func (h *StatsHandler) RenderFrames(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in dto.FramesRequest
	if err := rpc.Decode(req, &in); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	frames, err := h.uc.Frames(ctx, in.Steps)
	if err != nil {
		return nil, h.toStatus(ctx, "failed to render frames", err)
	}
	steps := 0
	if len(frames) > 0 {
		steps = len(frames[0].Frames) - 1
	}
	return encode(&dto.FramesResponse{Steps: steps, Frames: frames})
}

func (h *StatsHandler) toStatus(ctx context.Context, msg string, err error) error {
	if errors.Is(err, format.ErrInvalidInput) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	h.logger.Error(msg, zap.String("request_id", rpcctx.RequestID(ctx)), zap.Error(err))
	return status.Error(codes.Internal, err.Error())
}

func encode(v any) (*structpb.Struct, error) {
	out, err := rpc.Encode(v)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

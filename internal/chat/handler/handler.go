package handler

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/fekuna/omnipos-marketplace-service/internal/chat"
	"github.com/fekuna/omnipos-marketplace-service/internal/chat/dto"
	"github.com/fekuna/omnipos-marketplace-service/internal/logger"
	"github.com/fekuna/omnipos-marketplace-service/internal/rpc"
	"github.com/fekuna/omnipos-marketplace-service/internal/rpcctx"
)

var _ rpc.ChatServiceServer = (*ChatHandler)(nil)

type ChatHandler struct {
	uc     chat.UseCase
	clock  func() time.Time
	logger logger.ZapLogger
}

func NewChatHandler(uc chat.UseCase, log logger.ZapLogger) *ChatHandler {
	return &ChatHandler{
		uc:     uc,
		clock:  time.Now,
		logger: log,
	}
}

func (h *ChatHandler) ListConversations(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in dto.ListConversationsRequest
	if err := rpc.Decode(req, &in); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	now, err := h.renderTime(in.At)
	if err != nil {
		return nil, err
	}

	list, err := h.uc.ListConversations(ctx, in.Search, now)
	if err != nil {
		return nil, h.toStatus(ctx, "failed to list conversations", err)
	}
	return h.encode(list)
}

func (h *ChatHandler) ListMessages(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in dto.ListMessagesRequest
	if err := rpc.Decode(req, &in); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if in.ConversationID == "" {
		return nil, status.Error(codes.InvalidArgument, "conversation_id is required")
	}
	now, err := h.renderTime(in.At)
	if err != nil {
		return nil, err
	}

	list, err := h.uc.ListMessages(ctx, in.ConversationID, now)
	if err != nil {
		return nil, h.toStatus(ctx, "failed to list messages", err)
	}
	return h.encode(list)
}

func (h *ChatHandler) renderTime(at string) (time.Time, error) {
	if at == "" {
		return h.clock(), nil
	}
	t, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "at: %v", err)
	}
	return t, nil
}

func (h *ChatHandler) toStatus(ctx context.Context, msg string, err error) error {
	if errors.Is(err, chat.ErrNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	h.logger.Error(msg, zap.String("request_id", rpcctx.RequestID(ctx)), zap.Error(err))
	return status.Error(codes.Internal, err.Error())
}

func (h *ChatHandler) encode(v any) (*structpb.Struct, error) {
	out, err := rpc.Encode(v)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

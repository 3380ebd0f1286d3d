package rpcctx

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/fekuna/omnipos-marketplace-service/internal/logger"
)

var info = &grpc.UnaryServerInfo{FullMethod: "/marketplace.v1.ChatService/ListMessages"}

func TestInterceptorKeepsIncomingID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	intercept := ContextInterceptor(logger.FromZap(zap.New(core)))

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, "req-42"))
	var seen string
	_, err := intercept(ctx, nil, info, func(ctx context.Context, req any) (any, error) {
		seen = RequestID(ctx)
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("intercept: %v", err)
	}
	if seen != "req-42" {
		t.Errorf("request id = %q; want req-42", seen)
	}

	entries := logs.FilterMessage("rpc completed").All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries; want 1", len(entries))
	}
	if got := entries[0].ContextMap()["method"]; got != info.FullMethod {
		t.Errorf("logged method = %v", got)
	}
}

func TestInterceptorGeneratesID(t *testing.T) {
	intercept := ContextInterceptor(logger.NewNop())

	var seen string
	_, _ = intercept(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		seen = RequestID(ctx)
		return nil, nil
	})
	if _, err := uuid.Parse(seen); err != nil {
		t.Errorf("generated id %q is not a uuid: %v", seen, err)
	}
}

func TestInterceptorLogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	intercept := ContextInterceptor(logger.FromZap(zap.New(core)))

	_, err := intercept(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.NotFound, "conversation not found")
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %v; want NotFound", status.Code(err))
	}
	if logs.FilterMessage("rpc rejected").Len() != 1 {
		t.Errorf("expected one rejected entry, got %v", logs.All())
	}
}

func TestRequestIDEmpty(t *testing.T) {
	if got := RequestID(context.Background()); got != "" {
		t.Errorf("RequestID = %q; want empty", got)
	}
}

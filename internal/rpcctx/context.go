// Package rpcctx carries per-call request metadata for the gRPC services.
package rpcctx

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/fekuna/omnipos-marketplace-service/internal/logger"
)

const RequestIDHeader = "x-request-id"

type requestIDKey struct{}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id stored by ContextInterceptor, falling back to
// incoming metadata, or "" when neither carries one.
func RequestID(ctx context.Context) string {
	if val, ok := ctx.Value(requestIDKey{}).(string); ok {
		return val
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if val := md.Get(RequestIDHeader); len(val) > 0 {
			return val[0]
		}
	}
	return ""
}

// ContextInterceptor gives every call a request id, echoes it back in the
// response header and logs the outcome.
func ContextInterceptor(log logger.ZapLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		id := RequestID(ctx)
		if id == "" {
			id = uuid.NewString()
		}
		ctx = WithRequestID(ctx, id)
		// fails outside a real server stream, e.g. when called directly in tests
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, id))

		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("request_id", id),
			zap.Duration("duration", time.Since(start)),
			zap.String("code", code.String()),
		}
		switch code {
		case codes.OK:
			log.Debug("rpc completed", fields...)
		case codes.Internal, codes.Unknown:
			log.Error("rpc failed", append(fields, zap.Error(err))...)
		default:
			log.Info("rpc rejected", append(fields, zap.Error(err))...)
		}
		return resp, err
	}
}

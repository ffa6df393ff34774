package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const authHeaderKey ctxKey = "authHeader"

// authHeaderInterceptor copies the configured bearer header from incoming
// metadata into the context. Absent metadata leaves the context untouched.
func (s *GRPCServer) authHeaderInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(s.authHeader)
		if len(values) > 0 {
			ctx = context.WithValue(ctx, authHeaderKey, values[0])
			return handler(ctx, req)
		}
	}
	s.logger.Debug(ctx, "no auth header", "method", info.FullMethod)

	return handler(ctx, req)
}

// loggingInterceptor records method, duration and status code of every call.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Info(ctx, "gRPC call",
		"method", info.FullMethod,
		"duration", time.Since(start),
		"code", status.Code(err).String(),
	)
	return resp, err
}

func authHeaderFromContext(ctx context.Context) string {
	v, _ := ctx.Value(authHeaderKey).(string)
	return v
}

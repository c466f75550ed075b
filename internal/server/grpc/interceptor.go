package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// loggingInterceptor records the outcome of every unary call. Expected
// domain outcomes (NotFound etc.) are events, not failures; transport
// errors carry their status code.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	resp, err := handler(ctx, req)

	if err != nil {
		s.logger.Info(ctx, "rpc finished", "method", info.FullMethod, "code", status.Code(err).String())
	} else {
		s.logger.Debug(ctx, "rpc finished", "method", info.FullMethod, "code", "OK")
	}

	return resp, err
}

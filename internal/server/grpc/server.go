// Package grpc exposes the internal session-resolution endpoint. Other
// backend services call it to map an opaque session token to a user id
// without depending on the session cache directly.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/writehub/auth/internal/logging"
	pb "github.com/writehub/auth/internal/proto"
	"github.com/writehub/auth/internal/server/repositories/sessions"
)

type GRPCServer struct {
	pb.UnimplementedSessionResolverServer
	address  string
	sessions sessions.Repository
	logger   logging.Logger
}

func NewGRPCServer(address string, l logging.Logger, sr sessions.Repository) *GRPCServer {
	return &GRPCServer{
		address:  address,
		logger:   l.With("module", "grpc_server"),
		sessions: sr,
	}
}

// Run serves the resolver until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))

	pb.RegisterSessionResolverServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}

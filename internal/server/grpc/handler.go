package grpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/writehub/auth/internal/common"
	pb "github.com/writehub/auth/internal/proto"
)

// GetUser exchanges a session token for the user id it authorizes.
// A token that is not even token-shaped is an InvalidArgument, distinct
// from a well-formed token that is absent or expired (NotFound).
func (s *GRPCServer) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.GetUserResponse, error) {

	token := req.GetSessionId()
	if _, err := uuid.Parse(token); err != nil {
		return nil, status.Error(codes.InvalidArgument, "session_id is not a valid session token")
	}

	userID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorSessionNotFound) {
			return nil, status.Error(codes.NotFound, "session not found")
		}
		s.logger.Error(ctx, "session lookup failed", "error", err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.GetUserResponse{UserId: userID}, nil
}

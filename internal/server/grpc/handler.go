package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	pb "github.com/dmitrijs2005/authkeeper/internal/proto"
	"github.com/dmitrijs2005/authkeeper/internal/server/services"
)

// Domain failures are reported in the response body, never as gRPC errors.

func (s *GRPCServer) CreateUser(ctx context.Context, req *pb.CreateUserRequest) (*pb.UserResponse, error) {
	sess, err := s.auth.CreateAccount(ctx, req.GetLogin(), req.GetName(), req.GetPassword())
	if err != nil {
		return s.userFailure(ctx, "CreateUser", err), nil
	}
	s.logger.Info(ctx, "Registered", "login", req.GetLogin())
	return userSuccess(sess), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.UserResponse, error) {
	sess, err := s.auth.Login(ctx, req.GetLogin(), req.GetPassword())
	if err != nil {
		return s.userFailure(ctx, "Login", err), nil
	}
	return userSuccess(sess), nil
}

func (s *GRPCServer) RestorePassword(ctx context.Context, req *pb.RestorePasswordRequest) (*pb.UserResponse, error) {
	sess, err := s.auth.RestorePassword(ctx, req.GetLogin(), req.GetNewPassword())
	if err != nil {
		return s.userFailure(ctx, "RestorePassword", err), nil
	}
	s.logger.Info(ctx, "Password restored", "login", req.GetLogin())
	return userSuccess(sess), nil
}

func (s *GRPCServer) GenerateToken(ctx context.Context, _ *pb.GenerateTokenRequest) (*pb.GenerateTokenResponse, error) {
	token, err := s.auth.GenerateLinkToken(ctx, authHeaderFromContext(ctx))
	if err != nil {
		return &pb.GenerateTokenResponse{ErrorStatus: s.mapError(ctx, "GenerateToken", err)}, nil
	}
	return &pb.GenerateTokenResponse{Result: true, Token: token}, nil
}

func (s *GRPCServer) Auth(ctx context.Context, _ *pb.AuthRequest) (*pb.UserResponse, error) {
	return s.authenticate(ctx, "Auth")
}

func (s *GRPCServer) UpdateUser(ctx context.Context, _ *pb.AuthRequest) (*pb.UserResponse, error) {
	return s.authenticate(ctx, "UpdateUser")
}

func (s *GRPCServer) TGLink(ctx context.Context, req *pb.TGLinkRequest) (*pb.UserResponse, error) {
	sess, err := s.auth.LinkExternalID(ctx, req.GetToken(), req.TgId)
	if err != nil {
		return s.userFailure(ctx, "TGLink", err), nil
	}
	s.logger.Info(ctx, "Telegram link updated", "login", sess.User.Login, "linked", sess.User.IsLinked())
	return userSuccess(sess), nil
}

func (s *GRPCServer) TGLogin(ctx context.Context, req *pb.TGLoginRequest) (*pb.UserResponse, error) {
	sess, err := s.auth.LoginByExternalID(ctx, req.GetTgId())
	if err != nil {
		return s.userFailure(ctx, "TGLogin", err), nil
	}
	return userSuccess(sess), nil
}

func (s *GRPCServer) TGSignOut(ctx context.Context, req *pb.TGSignOutRequest) (*pb.TGSignOutResponse, error) {
	ok := s.auth.UnlinkExternalID(ctx, req.GetTgId())
	if !ok {
		s.logger.Warn(ctx, "TGSignOut: nothing unlinked")
	}
	return &pb.TGSignOutResponse{Result: ok}, nil
}

func (s *GRPCServer) authenticate(ctx context.Context, method string) (*pb.UserResponse, error) {
	sess, err := s.auth.Authenticate(ctx, authHeaderFromContext(ctx))
	if err != nil {
		return s.userFailure(ctx, method, err), nil
	}
	return userSuccess(sess), nil
}

func userSuccess(sess *services.Session) *pb.UserResponse {
	return &pb.UserResponse{
		Result: true,
		User:   &pb.UserModel{Name: sess.User.Name, Token: sess.Token},
	}
}

func (s *GRPCServer) userFailure(ctx context.Context, method string, err error) *pb.UserResponse {
	return &pb.UserResponse{ErrorStatus: s.mapError(ctx, method, err)}
}

// mapError converts a service error into its wire status. Known domain
// failures are logged at Warn, anything else at Error.
func (s *GRPCServer) mapError(ctx context.Context, method string, err error) pb.ErrorStatus {
	st := errorStatus(err)
	if st == pb.ErrorStatus_UNEXPECTED {
		s.logger.Error(ctx, method+" failed", "error", err.Error())
	} else {
		s.logger.Warn(ctx, method+" rejected", "status", st.String())
	}
	return st
}

func errorStatus(err error) pb.ErrorStatus {
	switch {
	case err == nil:
		return pb.ErrorStatus_NONE
	case errors.Is(err, common.ErrorAlreadyExists):
		return pb.ErrorStatus_ALREADY_EXISTED
	case errors.Is(err, common.ErrorIncorrectCredentials):
		return pb.ErrorStatus_INCORRECT_CREDENTIALS
	case errors.Is(err, common.ErrorUnauthenticated):
		return pb.ErrorStatus_UNAUTHENTICATED
	default:
		return pb.ErrorStatus_UNEXPECTED
	}
}

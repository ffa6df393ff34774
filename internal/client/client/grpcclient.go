package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/client/config"
	pb "github.com/dmitrijs2005/authkeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL  string
	authHeader   string
	authMarker   string
	timeout      time.Duration
	conn         *grpc.ClientConn
	client       pb.UserServiceClient
	sessionToken string
}

func withSessionToken(ctx context.Context, key, value string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(key, value)

	return metadata.NewOutgoingContext(ctx, md)
}

// sessionTokenInterceptor attaches the current session token, when there is
// one, and bounds every call by the configured timeout.
func (s *GRPCClient) sessionTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if s.sessionToken != "" {
		ctx = withSessionToken(ctx, s.authHeader, s.authMarker+s.sessionToken)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewAuthKeeperClient(cfg *config.Config) (*GRPCClient, error) {
	c := &GRPCClient{
		endpointURL: cfg.ServerEndpointAddr,
		authHeader:  cfg.AuthHeader,
		authMarker:  cfg.AuthMarker,
		timeout:     cfg.RequestTimeout,
	}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.sessionTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewUserServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Register(ctx context.Context, login, name, password string) (string, error) {
	resp, err := s.client.CreateUser(ctx, &pb.CreateUserRequest{Login: login, Name: name, Password: password})
	return s.session(resp, err)
}

func (s *GRPCClient) Login(ctx context.Context, login, password string) (string, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Login: login, Password: password})
	return s.session(resp, err)
}

func (s *GRPCClient) RestorePassword(ctx context.Context, login, newPassword string) (string, error) {
	resp, err := s.client.RestorePassword(ctx, &pb.RestorePasswordRequest{Login: login, NewPassword: newPassword})
	return s.session(resp, err)
}

// Refresh exchanges the current session token for a fresh one.
func (s *GRPCClient) Refresh(ctx context.Context) (string, error) {
	resp, err := s.client.Auth(ctx, &pb.AuthRequest{})
	return s.session(resp, err)
}

func (s *GRPCClient) GenerateLinkToken(ctx context.Context) (string, error) {
	resp, err := s.client.GenerateToken(ctx, &pb.GenerateTokenRequest{})
	if err != nil {
		return "", s.mapError(err)
	}
	if !resp.GetResult() {
		return "", statusError(resp.GetErrorStatus())
	}
	return resp.GetToken(), nil
}

// LinkTelegram binds tgID to the account behind linkToken; nil clears the link.
func (s *GRPCClient) LinkTelegram(ctx context.Context, linkToken string, tgID *int64) (string, error) {
	resp, err := s.client.TGLink(ctx, &pb.TGLinkRequest{Token: linkToken, TgId: tgID})
	return s.session(resp, err)
}

func (s *GRPCClient) TelegramLogin(ctx context.Context, tgID int64) (string, error) {
	resp, err := s.client.TGLogin(ctx, &pb.TGLoginRequest{TgId: tgID})
	return s.session(resp, err)
}

func (s *GRPCClient) TelegramSignOut(ctx context.Context, tgID int64) (bool, error) {
	resp, err := s.client.TGSignOut(ctx, &pb.TGSignOutRequest{TgId: tgID})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.GetResult(), nil
}

func (s *GRPCClient) Logout() {
	s.sessionToken = ""
}

func (s *GRPCClient) LoggedIn() bool {
	return s.sessionToken != ""
}

// session stores the token of a successful user response and returns the
// user's display name.
func (s *GRPCClient) session(resp *pb.UserResponse, err error) (string, error) {
	if err != nil {
		return "", s.mapError(err)
	}
	if !resp.GetResult() {
		return "", statusError(resp.GetErrorStatus())
	}
	s.sessionToken = resp.GetUser().GetToken()
	return resp.GetUser().GetName(), nil
}

func statusError(st pb.ErrorStatus) error {
	switch st {
	case pb.ErrorStatus_ALREADY_EXISTED:
		return ErrAlreadyExists
	case pb.ErrorStatus_INCORRECT_CREDENTIALS:
		return ErrIncorrectCredentials
	case pb.ErrorStatus_UNAUTHENTICATED:
		return ErrUnauthorized
	default:
		return ErrUnexpected
	}
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

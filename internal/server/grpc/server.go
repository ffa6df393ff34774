package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	pb "github.com/dmitrijs2005/authkeeper/internal/proto"
	"github.com/dmitrijs2005/authkeeper/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// AuthService is the business API served over gRPC.
type AuthService interface {
	CreateAccount(ctx context.Context, login, name, password string) (*services.Session, error)
	Login(ctx context.Context, login, password string) (*services.Session, error)
	RestorePassword(ctx context.Context, login, newPassword string) (*services.Session, error)
	GenerateLinkToken(ctx context.Context, header string) (string, error)
	Authenticate(ctx context.Context, header string) (*services.Session, error)
	LinkExternalID(ctx context.Context, linkToken string, externalID *int64) (*services.Session, error)
	LoginByExternalID(ctx context.Context, externalID int64) (*services.Session, error)
	UnlinkExternalID(ctx context.Context, externalID int64) bool
}

type GRPCServer struct {
	pb.UnimplementedUserServiceServer
	address    string
	auth       AuthService
	logger     logging.Logger
	authHeader string
}

func NewGRPCServer(a string, l logging.Logger, as AuthService, authHeader string) (*GRPCServer, error) {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		auth:       as,
		authHeader: authHeader,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on listen until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.authHeaderInterceptor))

	// registers services
	pb.RegisterUserServiceServer(srv, s)
	hs := health.NewServer()
	hs.SetServingStatus(pb.UserService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			hs.Shutdown()
			srv.GracefulStop()
		case <-stopped:
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}

// Package grpc exposes the credential service over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/credkeeper/internal/logging"
	pb "github.com/dmitrijs2005/credkeeper/internal/proto"
	"google.golang.org/grpc"
)

// CredentialService is the business API the transport delegates to.
type CredentialService interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (token string, ok bool, err error)
	DeleteAccount(ctx context.Context, username string) error
}

type GRPCServer struct {
	address     string
	credentials CredentialService
	logger      logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, cs CredentialService) *GRPCServer {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		credentials: cs,
	}
}

// newGRPCServer creates the gRPC server with interceptors and the service registered.
func (s *GRPCServer) newGRPCServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))
	pb.RegisterCredentialServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled,
// then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newGRPCServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}

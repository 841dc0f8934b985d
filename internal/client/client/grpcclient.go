package client

import (
	"context"
	"fmt"

	pb "github.com/dmitrijs2005/credkeeper/internal/proto"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// RequestIDHeaderName matches the header the server logs under.
const RequestIDHeaderName = "x-request-id"

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.CredentialServiceClient
	token       string
}

// newRequestID is a seam for tests.
var newRequestID = uuid.NewString

func withRequestID(ctx context.Context, id string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(RequestIDHeaderName, id)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	ctx = withRequestID(ctx, newRequestID())
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewCredKeeperClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.requestIDInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewCredentialServiceClient(conn)
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, username, password string) error {

	_, err := s.client.Register(ctx, pb.CredentialsRequest(username, password))
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

// Login returns the session token issued by the server and remembers it.
func (s *GRPCClient) Login(ctx context.Context, username, password string) (string, error) {

	resp, err := s.client.Login(ctx, pb.CredentialsRequest(username, password))
	if err != nil {
		return "", s.mapError(err)
	}

	s.token = resp.GetValue()
	return s.token, nil
}

func (s *GRPCClient) DeleteAccount(ctx context.Context, username string) error {

	_, err := s.client.DeleteAccount(ctx, pb.UsernameRequest(username))
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetValue() != "OK" {
		return ErrUnavailable
	}

	return nil
}

// Token returns the token from the last successful Login.
func (s *GRPCClient) Token() string {
	return s.token
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.AlreadyExists:
		return ErrDuplicateAccount
	case codes.Unauthenticated:
		return ErrInvalidCredentials
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

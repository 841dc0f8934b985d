package grpc

import (
	"context"
	"errors"

	pb "github.com/dmitrijs2005/credkeeper/internal/proto"
	"github.com/dmitrijs2005/credkeeper/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

var (
	errUsernameRequired = status.Error(codes.InvalidArgument, "username is required")
	errPasswordRequired = status.Error(codes.InvalidArgument, "password is required")
	errInvalidCreds     = status.Error(codes.Unauthenticated, "invalid credentials")
	errInternal         = status.Error(codes.Internal, "internal error")
)

func credentialsFromRequest(req *structpb.Struct) (string, string, error) {
	username, ok := pb.StringField(req, pb.FieldUsername)
	if !ok || username == "" {
		return "", "", errUsernameRequired
	}
	password, ok := pb.StringField(req, pb.FieldPassword)
	if !ok {
		return "", "", errPasswordRequired
	}
	return username, password, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {

	username, password, err := credentialsFromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.credentials.Register(ctx, username, password); err != nil {
		if errors.Is(err, services.ErrDuplicateAccount) {
			return nil, status.Error(codes.AlreadyExists, services.ErrDuplicateAccount.Error())
		}
		s.logger.Error(ctx, "register failed", "error", err.Error())
		return nil, errInternal
	}

	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {

	username, password, err := credentialsFromRequest(req)
	if err != nil {
		return nil, err
	}

	token, ok, err := s.credentials.Login(ctx, username, password)
	if err != nil {
		s.logger.Error(ctx, "login failed", "error", err.Error())
		return nil, errInternal
	}
	if !ok {
		return nil, errInvalidCreds
	}

	return wrapperspb.String(token), nil
}

func (s *GRPCServer) DeleteAccount(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {

	username, ok := pb.StringField(req, pb.FieldUsername)
	if !ok || username == "" {
		return nil, errUsernameRequired
	}

	if err := s.credentials.DeleteAccount(ctx, username); err != nil {
		s.logger.Error(ctx, "delete account failed", "error", err.Error())
		return nil, errInternal
	}

	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *emptypb.Empty) (*wrapperspb.StringValue, error) {

	return wrapperspb.String("OK"), nil

}

// Package proto describes the credkeeper.v1.CredentialService gRPC contract.
//
// The service is built from protobuf well-known types so no generated code
// is needed: requests are google.protobuf.Struct values carrying string
// fields "username" and "password"; replies are google.protobuf.Empty or
// google.protobuf.StringValue.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "credkeeper.v1.CredentialService"

const (
	CredentialService_Register_FullMethodName      = "/credkeeper.v1.CredentialService/Register"
	CredentialService_Login_FullMethodName         = "/credkeeper.v1.CredentialService/Login"
	CredentialService_DeleteAccount_FullMethodName = "/credkeeper.v1.CredentialService/DeleteAccount"
	CredentialService_Ping_FullMethodName          = "/credkeeper.v1.CredentialService/Ping"
)

// Request field names.
const (
	FieldUsername = "username"
	FieldPassword = "password"
)

// CredentialsRequest builds a request carrying username and password.
func CredentialsRequest(username, password string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldUsername: structpb.NewStringValue(username),
		FieldPassword: structpb.NewStringValue(password),
	}}
}

// UsernameRequest builds a request carrying only username.
func UsernameRequest(username string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldUsername: structpb.NewStringValue(username),
	}}
}

// StringField returns the string stored under key. ok is false if the key is
// absent or holds a non-string value.
func StringField(req *structpb.Struct, key string) (value string, ok bool) {
	v, found := req.GetFields()[key]
	if !found {
		return "", false
	}
	s, isString := v.GetKind().(*structpb.Value_StringValue)
	if !isString {
		return "", false
	}
	return s.StringValue, true
}

// CredentialServiceClient is the client API for CredentialService.
type CredentialServiceClient interface {
	Register(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Login(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	DeleteAccount(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type credentialServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCredentialServiceClient(cc grpc.ClientConnInterface) CredentialServiceClient {
	return &credentialServiceClient{cc}
}

func (c *credentialServiceClient) Register(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, CredentialService_Register_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *credentialServiceClient) Login(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, CredentialService_Login_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *credentialServiceClient) DeleteAccount(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, CredentialService_DeleteAccount_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *credentialServiceClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, CredentialService_Ping_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// CredentialServiceServer is the server API for CredentialService.
type CredentialServiceServer interface {
	Register(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	Login(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	DeleteAccount(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
}

func RegisterCredentialServiceServer(s grpc.ServiceRegistrar, srv CredentialServiceServer) {
	s.RegisterService(&CredentialService_ServiceDesc, srv)
}

func _CredentialService_Register_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CredentialServiceServer).Register(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CredentialService_Register_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CredentialServiceServer).Register(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _CredentialService_Login_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CredentialServiceServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CredentialService_Login_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CredentialServiceServer).Login(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _CredentialService_DeleteAccount_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CredentialServiceServer).DeleteAccount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CredentialService_DeleteAccount_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CredentialServiceServer).DeleteAccount(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _CredentialService_Ping_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CredentialServiceServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CredentialService_Ping_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CredentialServiceServer).Ping(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// CredentialService_ServiceDesc is the grpc.ServiceDesc for CredentialService.
var CredentialService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CredentialServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: _CredentialService_Register_Handler},
		{MethodName: "Login", Handler: _CredentialService_Login_Handler},
		{MethodName: "DeleteAccount", Handler: _CredentialService_DeleteAccount_Handler},
		{MethodName: "Ping", Handler: _CredentialService_Ping_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "credkeeper/v1/credential_service.proto",
}

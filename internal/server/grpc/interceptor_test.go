package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/credkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type recordingLogger struct {
	nopLogger
	msgs []string
	args [][]any
}

func (r *recordingLogger) Info(_ context.Context, msg string, args ...any) {
	r.msgs = append(r.msgs, msg)
	r.args = append(r.args, args)
}

func (r *recordingLogger) With(...any) logging.Logger { return r }

func attr(args []any, key string) any {
	for i := 0; i+1 < len(args); i += 2 {
		if args[i] == key {
			return args[i+1]
		}
	}
	return nil
}

func TestInterceptor_AssignsRequestIDAndLogs(t *testing.T) {
	orig := newRequestID
	newRequestID = func() string { return "req-1" }
	t.Cleanup(func() { newRequestID = orig })

	log := &recordingLogger{}
	s := NewGRPCServer("", log, &fakeCredentials{})
	info := &grpc.UnaryServerInfo{FullMethod: "/credkeeper.v1.CredentialService/Login"}

	var seen string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = RequestIDFromContext(ctx)
		return "ok", nil
	}

	resp, err := s.loggingInterceptor(context.Background(), "secret-payload", info, h)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Equal(t, "req-1", seen)

	require.Len(t, log.msgs, 1)
	args := log.args[0]
	assert.Equal(t, "req-1", attr(args, "request_id"))
	assert.Equal(t, info.FullMethod, attr(args, "method"))
	assert.Equal(t, "OK", attr(args, "code"))
	assert.NotNil(t, attr(args, "duration"))
	for _, a := range args {
		assert.NotEqual(t, "secret-payload", a)
	}
}

func TestInterceptor_ReusesIncomingRequestID(t *testing.T) {
	log := &recordingLogger{}
	s := NewGRPCServer("", log, &fakeCredentials{})
	info := &grpc.UnaryServerInfo{FullMethod: "/x/Y"}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeaderName, "from-client"))

	var seen string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = RequestIDFromContext(ctx)
		return nil, nil
	}

	_, err := s.loggingInterceptor(ctx, nil, info, h)
	require.NoError(t, err)
	assert.Equal(t, "from-client", seen)
	assert.Equal(t, "from-client", attr(log.args[0], "request_id"))
}

func TestInterceptor_LogsErrorCodeAndPassesErrorThrough(t *testing.T) {
	log := &recordingLogger{}
	s := NewGRPCServer("", log, &fakeCredentials{})
	info := &grpc.UnaryServerInfo{FullMethod: "/x/Y"}

	want := status.Error(codes.Unauthenticated, "invalid credentials")
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, want
	}

	_, err := s.loggingInterceptor(context.Background(), nil, info, h)
	assert.Equal(t, want, err)
	assert.Equal(t, "Unauthenticated", attr(log.args[0], "code"))
}

func TestInterceptor_PlainErrorLogsUnknown(t *testing.T) {
	log := &recordingLogger{}
	s := NewGRPCServer("", log, &fakeCredentials{})

	_, err := s.loggingInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/x/Y"},
		func(ctx context.Context, req interface{}) (interface{}, error) { return nil, errors.New("plain") })
	assert.Error(t, err)
	assert.Equal(t, "Unknown", attr(log.args[0], "code"))
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
}

package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeaderName carries the per-call request id in metadata.
const RequestIDHeaderName = "x-request-id"

type ctxKey string

const requestIDKey ctxKey = "requestID"

// newRequestID is a seam for tests.
var newRequestID = uuid.NewString

// RequestIDFromContext returns the id assigned by the logging interceptor.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// requestID reuses a caller-supplied id from incoming metadata or assigns a new one.
func requestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(RequestIDHeaderName)
		if len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}
	return newRequestID()
}

// loggingInterceptor tags every unary call with a request id and logs the
// method, resulting status code and duration. Payloads are never logged.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	id := requestID(ctx)
	ctx = context.WithValue(ctx, requestIDKey, id)

	// fails outside a real transport stream; the id is only informational
	_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeaderName, id))

	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "rpc",
		"request_id", id,
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)

	return resp, err
}

// Package client contains the client-side API for the credkeeper server.
//
// # Overview
//
// The package provides a transport-agnostic contract (see the Client
// interface) with Register, Login, DeleteAccount and Ping, and a gRPC
// implementation (see GRPCClient) that manages the connection, tags every
// call with a request id and maps gRPC status codes to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrDuplicateAccount, ErrInvalidCredentials.
// Other failures are wrapped as "rpc error: ...".
//
// GRPCClient keeps the most recent session token; it is safe for use by one
// goroutine at a time.
package client

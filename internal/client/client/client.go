package client

import "context"

type Client interface {
	Close() error
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
	DeleteAccount(ctx context.Context, username string) error
	Ping(ctx context.Context) error
}

// Package accounts provides account store implementations: in-memory,
// PostgreSQL, SQLite and S3-compatible object storage.
//
// Every implementation makes SaveAccount an atomic insert-if-absent: saving a
// username that already exists fails with common.ErrorAlreadyExists and leaves
// the stored account untouched.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/credkeeper/internal/server/models"
)

type Repository interface {
	// GetAccount returns common.ErrorNotFound when username is absent.
	GetAccount(ctx context.Context, username string) (*models.Account, error)
	// SaveAccount returns common.ErrorAlreadyExists when username is taken.
	SaveAccount(ctx context.Context, account *models.Account) error
	// DeleteAccount succeeds when username is already absent.
	DeleteAccount(ctx context.Context, username string) error
}

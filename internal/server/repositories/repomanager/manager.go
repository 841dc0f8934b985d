// Package repomanager opens the account store selected by configuration and
// owns its lifecycle: connection setup, schema migrations (via goose) and
// shutdown.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/server/config"
	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/accounts"
)

type RepositoryManager interface {
	Accounts() accounts.Repository
	Close() error
}

// New opens the store named by cfg.StoreKind. SQL stores are migrated before
// New returns.
func New(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	switch cfg.StoreKind {
	case config.StoreMemory:
		return NewMemoryRepositoryManager(), nil
	case config.StorePostgres:
		return NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	case config.StoreSQLite:
		return NewSQLiteRepositoryManager(ctx, cfg.SQLitePath)
	case config.StoreS3:
		return NewS3RepositoryManager(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown store kind %q", cfg.StoreKind)
	}
}

// MemoryRepositoryManager vends a process-local account store.
type MemoryRepositoryManager struct {
	accounts *accounts.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{accounts: accounts.NewMemoryRepository()}
}

func (m *MemoryRepositoryManager) Accounts() accounts.Repository { return m.accounts }

func (m *MemoryRepositoryManager) Close() error { return nil }

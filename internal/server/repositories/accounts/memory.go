package accounts

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
)

type MemoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{accounts: make(map[string]models.Account)}
}

func (r *MemoryRepository) GetAccount(ctx context.Context, username string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accounts[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &acc, nil
}

func (r *MemoryRepository) SaveAccount(ctx context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.Username]; ok {
		return common.ErrorAlreadyExists
	}
	r.accounts[account.Username] = *account
	return nil
}

func (r *MemoryRepository) DeleteAccount(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.accounts, username)
	return nil
}

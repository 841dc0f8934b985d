package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/dbx"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetAccount(ctx context.Context, username string) (*models.Account, error) {
	acc := &models.Account{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, credential_record, created_at FROM accounts WHERE username = ?`, username).
		Scan(&acc.ID, &acc.Username, &acc.CredentialRecord, &acc.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account[%s]: %w", username, err)
	}
	return acc, nil
}

func (r *SQLiteRepository) SaveAccount(ctx context.Context, account *models.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (id, username, credential_record, created_at) VALUES (?, ?, ?, ?)
	`, account.ID, account.Username, account.CredentialRecord, account.CreatedAt.UTC())

	if dbx.IsUniqueViolation(err) {
		return common.ErrorAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("failed to save account[%s]: %w", account.Username, err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteAccount(ctx context.Context, username string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE username = ?`, username)
	if err != nil {
		return fmt.Errorf("failed to delete account[%s]: %w", username, err)
	}
	return nil
}

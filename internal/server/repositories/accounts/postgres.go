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

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetAccount(ctx context.Context, username string) (*models.Account, error) {
	query :=
		`SELECT id, username, credential_record, created_at FROM accounts
		 WHERE username = $1
		 `

	acc := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&acc.ID, &acc.Username, &acc.CredentialRecord, &acc.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return acc, nil
}

func (r *PostgresRepository) SaveAccount(ctx context.Context, account *models.Account) error {
	query :=
		`INSERT INTO accounts (id, username, credential_record, created_at)
		 VALUES ($1, $2, $3, $4)
		 `

	_, err := r.db.ExecContext(ctx, query,
		account.ID, account.Username, account.CredentialRecord, account.CreatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) DeleteAccount(ctx context.Context, username string) error {
	query := `DELETE FROM accounts WHERE username = $1`

	if _, err := r.db.ExecContext(ctx, query, username); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

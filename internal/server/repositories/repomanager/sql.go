package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/filex"
	"github.com/dmitrijs2005/credkeeper/internal/server/migrations"
	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/accounts"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// SQLRepositoryManager vends database/sql-backed account repositories
// (PostgreSQL through pgx, or SQLite through modernc.org/sqlite).
type SQLRepositoryManager struct {
	db       *sql.DB
	accounts accounts.Repository
}

// NewPostgresRepositoryManager connects to dsn and applies the PostgreSQL
// migrations.
func NewPostgresRepositoryManager(ctx context.Context, dsn string) (*SQLRepositoryManager, error) {
	db, err := openDB(ctx, "pgx", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db, "pgx", migrations.PostgresDir); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return &SQLRepositoryManager{db: db, accounts: accounts.NewPostgresRepository(db)}, nil
}

// NewSQLiteRepositoryManager opens (creating if needed) the database file at
// path and applies the SQLite migrations.
func NewSQLiteRepositoryManager(ctx context.Context, path string) (*SQLRepositoryManager, error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, err
	}

	db, err := openDB(ctx, "sqlite", path)
	if err != nil {
		return nil, err
	}
	// single writer; also keeps ":memory:" databases on one connection
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db, "sqlite3", migrations.SQLiteDir); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return &SQLRepositoryManager{db: db, accounts: accounts.NewSQLiteRepository(db)}, nil
}

func openDB(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sqlOpen(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	return db, nil
}

// RunMigrations sets up goose with the embedded migrations and applies the
// ones under dir using the given goose dialect.
func RunMigrations(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, dir); err != nil {
		return err
	}
	return nil
}

func (m *SQLRepositoryManager) Accounts() accounts.Repository { return m.accounts }

func (m *SQLRepositoryManager) Close() error { return m.db.Close() }

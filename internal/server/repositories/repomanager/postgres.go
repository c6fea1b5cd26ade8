package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/healthsync/internal/dbx"
	"github.com/dmitrijs2005/healthsync/internal/server/migrations"
	"github.com/dmitrijs2005/healthsync/internal/server/repositories/identities"
	"github.com/dmitrijs2005/healthsync/internal/server/repositories/records"
	"github.com/dmitrijs2005/healthsync/internal/server/repositories/tokens"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories over one
// shared *sql.DB pool.
type PostgresRepositoryManager struct {
	db *sql.DB
}

// NewPostgresRepositoryManager opens a pgx pool for dsn. The connection is
// not checked until Ping.
func NewPostgresRepositoryManager(dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return NewPostgresRepositoryManagerFromDB(db), nil
}

func NewPostgresRepositoryManagerFromDB(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{db: db}
}

func (m *PostgresRepositoryManager) Identities() identities.Repository {
	return identities.NewPostgresRepository(m.db)
}

func (m *PostgresRepositoryManager) Tokens() tokens.Registry {
	return tokens.NewPostgresRegistry(m.db)
}

func (m *PostgresRepositoryManager) Records() records.Repository {
	return records.NewPostgresRepository(m.db)
}

func (m *PostgresRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, txRepositories{tx: tx})
	})
}

func (m *PostgresRepositoryManager) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded goose migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

type txRepositories struct {
	tx dbx.DBTX
}

func (r txRepositories) Identities() identities.Repository {
	return identities.NewPostgresRepository(r.tx)
}

func (r txRepositories) Tokens() tokens.Registry {
	return tokens.NewPostgresRegistry(r.tx)
}

func (r txRepositories) Records() records.Repository {
	return records.NewPostgresRepository(r.tx)
}

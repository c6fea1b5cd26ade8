// Package repomanager hands out the repositories backing the services,
// either on PostgreSQL or in process memory.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/healthsync/internal/server/repositories/identities"
	"github.com/dmitrijs2005/healthsync/internal/server/repositories/records"
	"github.com/dmitrijs2005/healthsync/internal/server/repositories/tokens"
)

// Repositories groups the stores that can take part in one transaction.
type Repositories interface {
	Identities() identities.Repository
	Tokens() tokens.Registry
	Records() records.Repository
}

type RepositoryManager interface {
	Repositories

	RunMigrations(ctx context.Context) error
	Ping(ctx context.Context) error

	// WithTx runs fn with repositories that commit together. Any error
	// returned by fn aborts every write fn made through them.
	WithTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error

	Close() error
}

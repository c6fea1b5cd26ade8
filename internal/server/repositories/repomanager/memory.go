package repomanager

import (
	"context"

	"github.com/dmitrijs2005/healthsync/internal/server/repositories/identities"
	"github.com/dmitrijs2005/healthsync/internal/server/repositories/records"
	"github.com/dmitrijs2005/healthsync/internal/server/repositories/tokens"
)

// MemoryRepositoryManager keeps everything in process memory. WithTx runs
// fn directly: each store is individually atomic but writes are not rolled
// back together.
type MemoryRepositoryManager struct {
	identities *identities.MemoryRepository
	tokens     *tokens.MemoryRegistry
	records    *records.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		identities: identities.NewMemoryRepository(),
		tokens:     tokens.NewMemoryRegistry(),
		records:    records.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Identities() identities.Repository { return m.identities }
func (m *MemoryRepositoryManager) Tokens() tokens.Registry           { return m.tokens }
func (m *MemoryRepositoryManager) Records() records.Repository       { return m.records }

// RecordStore exposes the concrete record store for inspection.
func (m *MemoryRepositoryManager) RecordStore() *records.MemoryRepository { return m.records }

func (m *MemoryRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	return fn(ctx, m)
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }
func (m *MemoryRepositoryManager) Ping(context.Context) error          { return nil }
func (m *MemoryRepositoryManager) Close() error                        { return nil }

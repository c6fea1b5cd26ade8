package tokens

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/healthsync/internal/common"
	"github.com/dmitrijs2005/healthsync/internal/server/models"
)

type MemoryRegistry struct {
	mu       sync.RWMutex
	bindings map[string]models.TokenBinding
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{bindings: make(map[string]models.TokenBinding)}
}

// Record keeps the first binding seen for a token.
func (r *MemoryRegistry) Record(_ context.Context, b models.TokenBinding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bindings[b.Token]; exists {
		return nil
	}
	b.Response = slices.Clone(b.Response)
	r.bindings[b.Token] = b
	return nil
}

func (r *MemoryRegistry) Lookup(_ context.Context, token string) (*models.TokenBinding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bindings[token]
	if !ok {
		return nil, common.ErrNotFound
	}
	b.Response = slices.Clone(b.Response)
	return &b, nil
}

package identities

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/healthsync/internal/common"
	"github.com/dmitrijs2005/healthsync/internal/server/models"
)

// MemoryRepository keeps identities in process memory. Create is an atomic
// insert-if-absent on email.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*models.Identity
	byEmail map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[string]*models.Identity),
		byEmail: make(map[string]string),
	}
}

func (r *MemoryRepository) Create(_ context.Context, identity *models.Identity) (*models.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[identity.Email]; exists {
		return nil, common.ErrDuplicateEmail
	}

	prepareIdentity(identity)
	stored := *identity
	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = stored.ID

	return identity, nil
}

func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (*models.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	found := *r.byID[id]
	return &found, nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*models.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identity, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	found := *identity
	return &found, nil
}

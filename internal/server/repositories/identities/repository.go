// Package identities stores registered accounts.
package identities

import (
	"context"

	"github.com/dmitrijs2005/healthsync/internal/server/models"
)

// Repository is the identity store. Create fails with
// common.ErrDuplicateEmail when the email is taken; lookups fail with
// common.ErrNotFound when nothing matches.
type Repository interface {
	Create(ctx context.Context, identity *models.Identity) (*models.Identity, error)
	FindByEmail(ctx context.Context, email string) (*models.Identity, error)
	FindByID(ctx context.Context, id string) (*models.Identity, error)
}

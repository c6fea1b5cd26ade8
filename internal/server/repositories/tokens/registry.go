// Package tokens is the registry of issued access tokens.
package tokens

import (
	"context"

	"github.com/dmitrijs2005/healthsync/internal/server/models"
)

// Registry records issued access tokens. Record is an idempotent insert
// keyed by the token string; Lookup fails with common.ErrNotFound for
// tokens that were never recorded.
type Registry interface {
	Record(ctx context.Context, binding models.TokenBinding) error
	Lookup(ctx context.Context, token string) (*models.TokenBinding, error)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/healthsync/internal/common"
	"github.com/dmitrijs2005/healthsync/internal/logging"
	"github.com/dmitrijs2005/healthsync/internal/server/auth"
	"github.com/dmitrijs2005/healthsync/internal/server/models"
	"github.com/dmitrijs2005/healthsync/internal/server/repositories/tokens"
)

// Authorizer admits requests carrying a registered, unexpired access token.
type Authorizer struct {
	registry tokens.Registry
	issuer   *auth.Issuer
	logger   logging.Logger
}

func NewAuthorizer(registry tokens.Registry, issuer *auth.Issuer, logger logging.Logger) *Authorizer {
	return &Authorizer{
		registry: registry,
		issuer:   issuer,
		logger:   logger.With("module", "authorizer"),
	}
}

// Authorize returns the registry binding for token. Missing, unregistered,
// expired, or forged tokens fail with common.ErrUnauthorized; a failing
// registry yields common.ErrStoreUnavailable.
func (a *Authorizer) Authorize(ctx context.Context, token string) (*models.TokenBinding, error) {
	if strings.TrimSpace(token) == "" {
		return nil, common.ErrUnauthorized
	}

	if _, err := a.issuer.VerifyAccess(token); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnauthorized, err)
	}

	binding, err := a.registry.Lookup(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		a.logger.Error(ctx, "registry lookup failed", "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	return binding, nil
}

// Package services implements registration, login, token refresh, request
// authorization, and record logging on top of the repositories.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/healthsync/internal/api"
	"github.com/dmitrijs2005/healthsync/internal/common"
	"github.com/dmitrijs2005/healthsync/internal/logging"
	"github.com/dmitrijs2005/healthsync/internal/server/auth"
	"github.com/dmitrijs2005/healthsync/internal/server/models"
	"github.com/dmitrijs2005/healthsync/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

type SessionService struct {
	repos  repomanager.RepositoryManager
	issuer *auth.Issuer
	hasher auth.PasswordHasher
	logger logging.Logger
	now    func() time.Time
}

func NewSessionService(repos repomanager.RepositoryManager, issuer *auth.Issuer, hasher auth.PasswordHasher, logger logging.Logger) *SessionService {
	return &SessionService{
		repos:  repos,
		issuer: issuer,
		hasher: hasher,
		logger: logger.With("module", "sessions"),
		now:    time.Now,
	}
}

// Register creates an identity and issues its first token pair. The
// identity and the registry entry for the access token are written in one
// transaction.
func (s *SessionService) Register(ctx context.Context, in api.RegisterInput) (*api.AuthResponse, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := in.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %v", common.ErrInternal, err)
	}

	identity := &models.Identity{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		Height:       in.Height,
		Weight:       in.Weight,
		Age:          in.Age,
		CreatedAt:    s.now().UTC(),
	}

	resp, binding, err := s.issueSession(identity)
	if err != nil {
		return nil, err
	}

	err = s.repos.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		if _, err := repos.Identities().Create(ctx, identity); err != nil {
			return err
		}
		return repos.Tokens().Record(ctx, *binding)
	})
	if err != nil {
		return nil, s.storeError(ctx, "register", err)
	}

	s.logger.Info(ctx, "identity registered", "user_id", identity.ID)
	return resp, nil
}

// Login checks the password of the identity registered under in.Email and
// issues a new token pair.
func (s *SessionService) Login(ctx context.Context, in api.LoginInput) (*api.AuthResponse, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := in.Validate(); err != nil {
		return nil, err
	}

	identity, err := s.repos.Identities().FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, s.storeError(ctx, "login", err)
	}

	if err := s.hasher.Compare(identity.PasswordHash, in.Password); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: compare password: %v", common.ErrInternal, err)
	}

	resp, binding, err := s.issueSession(identity)
	if err != nil {
		return nil, err
	}
	if err := s.repos.Tokens().Record(ctx, *binding); err != nil {
		return nil, s.storeError(ctx, "login", err)
	}

	s.logger.Info(ctx, "identity logged in", "user_id", identity.ID)
	return resp, nil
}

// Refresh exchanges a valid refresh token for a new token pair. The new
// access token is recorded in the registry so it authorizes requests.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (*api.RefreshResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, common.ErrInvalidRefreshToken
	}

	claims, err := s.issuer.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidRefreshToken, err)
	}

	identity, err := s.repos.Identities().FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, s.storeError(ctx, "refresh", err)
	}

	access, accessClaims, err := s.issuer.IssueAccessToken(identity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInternal, err)
	}
	refresh, err := s.issuer.IssueRefreshToken(identity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInternal, err)
	}

	resp := &api.RefreshResponse{Token: access, RefreshToken: refresh}
	binding, err := newBinding(identity, access, accessClaims, resp)
	if err != nil {
		return nil, err
	}
	if err := s.repos.Tokens().Record(ctx, *binding); err != nil {
		return nil, s.storeError(ctx, "refresh", err)
	}

	s.logger.Info(ctx, "session refreshed", "user_id", identity.ID)
	return resp, nil
}

func (s *SessionService) issueSession(identity *models.Identity) (*api.AuthResponse, *models.TokenBinding, error) {
	access, claims, err := s.issuer.IssueAccessToken(identity)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", common.ErrInternal, err)
	}
	refresh, err := s.issuer.IssueRefreshToken(identity)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", common.ErrInternal, err)
	}

	resp := &api.AuthResponse{
		UserID:       identity.ID,
		Email:        identity.Email,
		Token:        access,
		RefreshToken: refresh,
		Profile:      identity.Profile(),
	}
	binding, err := newBinding(identity, access, claims, resp)
	if err != nil {
		return nil, nil, err
	}
	return resp, binding, nil
}

func newBinding(identity *models.Identity, token string, claims *auth.Claims, response any) (*models.TokenBinding, error) {
	snapshot, err := json.Marshal(response)
	if err != nil {
		return nil, fmt.Errorf("%w: encode response: %v", common.ErrInternal, err)
	}
	return &models.TokenBinding{
		Token:      token,
		IdentityID: identity.ID,
		Email:      identity.Email,
		Response:   snapshot,
		IssuedAt:   claims.IssuedAt.Time,
		ExpiresAt:  claims.ExpiresAt.Time,
	}, nil
}

// storeError passes taxonomy errors through and reports anything else as
// common.ErrStoreUnavailable.
func (s *SessionService) storeError(ctx context.Context, op string, err error) error {
	if common.IsTaxonomy(err) {
		return err
	}
	s.logger.Error(ctx, "store failure", "operation", op, "error", err)
	return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
}

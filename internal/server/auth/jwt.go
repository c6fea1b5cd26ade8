// Package auth mints and verifies the HS256 tokens handed out by the
// session service, and hashes account passwords.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/healthsync/internal/common"
	"github.com/dmitrijs2005/healthsync/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	DefaultAccessTokenTTL  = time.Hour
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims is the payload of both token kinds. Refresh tokens leave Email empty.
type Claims struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	Roles     []string  `json:"roles,omitempty"`
	TokenType TokenType `json:"token_type,omitempty"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens with one process-wide secret.
type Issuer struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

type IssuerOption func(*Issuer)

// WithClock replaces time.Now for both signing and verification.
func WithClock(now func() time.Time) IssuerOption {
	return func(i *Issuer) { i.now = now }
}

// NewIssuer returns an Issuer. Non-positive TTLs fall back to the defaults.
func NewIssuer(secret []byte, issuer string, accessTTL, refreshTTL time.Duration, opts ...IssuerOption) *Issuer {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTokenTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTokenTTL
	}
	i := &Issuer{
		secret:     secret,
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// IssueAccessToken mints an access token for identity and returns it with
// the claims it carries.
func (i *Issuer) IssueAccessToken(identity *models.Identity) (string, *Claims, error) {
	claims := i.claims(identity.ID, TokenTypeAccess, i.accessTTL)
	claims.Email = identity.Email

	token, err := i.sign(claims)
	if err != nil {
		return "", nil, err
	}
	return token, claims, nil
}

// IssueRefreshToken mints a refresh token for identity.
func (i *Issuer) IssueRefreshToken(identity *models.Identity) (string, error) {
	return i.sign(i.claims(identity.ID, TokenTypeRefresh, i.refreshTTL))
}

// Verify checks signature, algorithm, and expiry. exp is enforced only when
// the token carries one.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	}
	if i.issuer != "" {
		opts = append(opts, jwt.WithIssuer(i.issuer))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	}, opts...)
	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, common.ErrTokenExpired
	default:
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidSignature, err)
	}
}

func (i *Issuer) VerifyAccess(tokenString string) (*Claims, error) {
	return i.verifyType(tokenString, TokenTypeAccess)
}

func (i *Issuer) VerifyRefresh(tokenString string) (*Claims, error) {
	return i.verifyType(tokenString, TokenTypeRefresh)
}

func (i *Issuer) verifyType(tokenString string, want TokenType) (*Claims, error) {
	claims, err := i.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != want {
		return nil, common.ErrWrongTokenType
	}
	return claims, nil
}

func (i *Issuer) claims(userID string, typ TokenType, ttl time.Duration) *Claims {
	now := i.now()
	return &Claims{
		UserID:    userID,
		Roles:     []string{common.RoleUser},
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    i.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

func (i *Issuer) sign(claims *Claims) (string, error) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

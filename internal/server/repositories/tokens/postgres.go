package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/healthsync/internal/common"
	"github.com/dmitrijs2005/healthsync/internal/dbx"
	"github.com/dmitrijs2005/healthsync/internal/server/models"
)

type PostgresRegistry struct {
	db dbx.DBTX
}

func NewPostgresRegistry(db dbx.DBTX) *PostgresRegistry {
	return &PostgresRegistry{db: db}
}

func (r *PostgresRegistry) Record(ctx context.Context, b models.TokenBinding) error {
	query :=
		`INSERT INTO tokens (token, identity_id, email, response, issued_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (token) DO NOTHING
		 `

	_, err := r.db.ExecContext(ctx, query,
		b.Token, b.IdentityID, b.Email, string(b.Response), b.IssuedAt, b.ExpiresAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRegistry) Lookup(ctx context.Context, token string) (*models.TokenBinding, error) {
	query :=
		`SELECT identity_id, email, response, issued_at, expires_at FROM tokens
		 WHERE token = $1
		 `

	b := &models.TokenBinding{Token: token}
	var response []byte
	err := r.db.QueryRowContext(ctx, query, token).
		Scan(&b.IdentityID, &b.Email, &response, &b.IssuedAt, &b.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	b.Response = response
	return b, nil
}

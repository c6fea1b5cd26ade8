package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/healthsync/internal/common"
	"github.com/dmitrijs2005/healthsync/internal/server/repositories/repomanager"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newPostgresEnv(t *testing.T) (*env, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return newEnv(t, repomanager.NewPostgresRepositoryManagerFromDB(db)), mock
}

func TestRegister_Postgres_CommitsIdentityAndToken(t *testing.T) {
	e, mock := newPostgresEnv(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT\s+INTO\s+identities`).
		WithArgs(sqlmock.AnyArg(), "a@x.com", sqlmock.AnyArg(), "A", 180.0, 75.0, 30, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT\s+INTO\s+tokens`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := e.sessions.Register(context.Background(), registerInput())
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_Postgres_DuplicateRollsBack(t *testing.T) {
	e, mock := newPostgresEnv(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT\s+INTO\s+identities`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	_, err := e.sessions.Register(context.Background(), registerInput())
	require.ErrorIs(t, err, common.ErrDuplicateEmail)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_Postgres_BeginFailureIsStoreUnavailable(t *testing.T) {
	e, mock := newPostgresEnv(t)

	mock.ExpectBegin().WillReturnError(errBoom)

	_, err := e.sessions.Register(context.Background(), registerInput())
	require.ErrorIs(t, err, common.ErrStoreUnavailable)
}

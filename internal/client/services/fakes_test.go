package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophdiary/internal/client/client"
	"github.com/dmitrijs2005/gophdiary/internal/client/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func getMeta(t *testing.T, db *sql.DB, k string) []byte {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key=?`, k).Scan(&v)
	if err == sql.ErrNoRows {
		return nil
	}
	require.NoError(t, err)
	return v
}

// fakeClient implements client.Client for service tests.
type fakeClient struct {
	SignInRet []byte
	SignInErr error

	SignUpRet string
	SignUpErr error

	ListRet []models.Note
	ListErr error

	CreateErr error
	DeleteErr error

	LastSignInUser string
	LastSignInPass string
	LastSignUpUser string
	LastContent    string
	LastDeleteID   int64
	Headers        []client.Header
}

func (f *fakeClient) SignIn(_ context.Context, username, password string) ([]byte, error) {
	f.LastSignInUser, f.LastSignInPass = username, password
	return f.SignInRet, f.SignInErr
}

func (f *fakeClient) SignUp(_ context.Context, username, _ string) (string, error) {
	f.LastSignUpUser = username
	return f.SignUpRet, f.SignUpErr
}

func (f *fakeClient) ListNotes(_ context.Context, auth client.Header) ([]models.Note, error) {
	f.Headers = append(f.Headers, auth)
	return f.ListRet, f.ListErr
}

func (f *fakeClient) CreateNote(_ context.Context, auth client.Header, content string) error {
	f.Headers = append(f.Headers, auth)
	f.LastContent = content
	return f.CreateErr
}

func (f *fakeClient) DeleteNote(_ context.Context, auth client.Header, id int64) error {
	f.Headers = append(f.Headers, auth)
	f.LastDeleteID = id
	return f.DeleteErr
}

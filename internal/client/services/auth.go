// Package services contains the diary client's application services: the
// session store with its auth header provider, and the note repository.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/gophdiary/internal/client/client"
	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophdiary/internal/common"
	"github.com/dmitrijs2005/gophdiary/internal/dbx"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
)

// SessionStore owns the authenticated Identity and its persistence.
//
// Contract:
//   - Login: authenticate, persist the Identity; on failure the previous
//     Identity is left untouched and a *client.AuthError is returned.
//   - Register: create an account; never establishes a session.
//   - Logout: drop the persisted Identity; idempotent, no remote call.
//   - Current: the persisted Identity or nil; never fails.
//   - AuthHeader: headers for an authenticated request built from Current.
type SessionStore interface {
	Login(ctx context.Context, username, password string) (*models.Identity, error)
	Register(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) *models.Identity
	AuthHeader(ctx context.Context) client.Header
}

type sessionStore struct {
	client client.Client
	db     *sql.DB
	log    logging.Logger
}

// NewSessionStore constructs a SessionStore bound to the API client and the
// local database holding the metadata table.
func NewSessionStore(client client.Client, db *sql.DB, log logging.Logger) SessionStore {
	return &sessionStore{client: client, db: db, log: log}
}

func (s *sessionStore) getMetadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

func (s *sessionStore) Login(ctx context.Context, username, password string) (*models.Identity, error) {
	payload, err := s.client.SignIn(ctx, username, password)
	if err != nil {
		s.log.Warn(ctx, "login rejected", "username", username, "error", err)
		return nil, err
	}

	identity, err := models.ParseIdentity(payload)
	if err != nil {
		return nil, &client.AuthError{Message: "unexpected login response", Err: err}
	}

	if identity.Username == "" {
		identity.Username = username
		identity.Claims["username"] = username
		if payload, err = json.Marshal(identity.Claims); err != nil {
			return nil, fmt.Errorf("encode identity: %w", err)
		}
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Set(ctx, common.IdentityMetadataKey, payload)
	})
	if err != nil {
		return nil, fmt.Errorf("identity saving error: %w", err)
	}

	s.log.Info(ctx, "logged in", "username", identity.Username)
	return identity, nil
}

func (s *sessionStore) Register(ctx context.Context, username, password string) (string, error) {
	msg, err := s.client.SignUp(ctx, username, password)
	if err != nil {
		s.log.Warn(ctx, "registration rejected", "username", username, "error", err)
		return "", err
	}
	s.log.Info(ctx, "registered", "username", username)
	return msg, nil
}

func (s *sessionStore) Logout(ctx context.Context) error {
	if err := s.getMetadataRepo().Delete(ctx, common.IdentityMetadataKey); err != nil {
		return fmt.Errorf("identity clearing error: %w", err)
	}
	s.log.Info(ctx, "logged out")
	return nil
}

func (s *sessionStore) Current(ctx context.Context) *models.Identity {
	payload, err := s.getMetadataRepo().Get(ctx, common.IdentityMetadataKey)
	if err != nil {
		s.log.Error(ctx, "reading identity failed", "error", err)
		return nil
	}
	if payload == nil {
		return nil
	}

	identity, err := models.ParseIdentity(payload)
	if err != nil {
		s.log.Warn(ctx, "discarding unreadable identity", "error", err)
		return nil
	}
	return identity
}

func (s *sessionStore) AuthHeader(ctx context.Context) client.Header {
	return AuthHeader(s.Current(ctx))
}

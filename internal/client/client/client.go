package client

import (
	"context"

	"github.com/dmitrijs2005/gophdiary/internal/client/models"
)

// Header is a set of request headers, name -> value.
type Header map[string]string

// Client is the diary backend API.
type Client interface {
	// SignIn returns the raw identity payload on success.
	SignIn(ctx context.Context, username, password string) ([]byte, error)
	// SignUp returns the server confirmation message.
	SignUp(ctx context.Context, username, password string) (string, error)
	ListNotes(ctx context.Context, auth Header) ([]models.Note, error)
	CreateNote(ctx context.Context, auth Header, content string) error
	DeleteNote(ctx context.Context, auth Header, id int64) error
}

package services

import (
	"context"

	"github.com/dmitrijs2005/gophdiary/internal/client/client"
	"github.com/dmitrijs2005/gophdiary/internal/client/models"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
)

// NoteService is the client view of the remote note collection. It keeps
// no cache: callers re-list to observe their own changes.
type NoteService interface {
	ListAll(ctx context.Context) ([]models.Note, error)
	Create(ctx context.Context, content string) error
	Delete(ctx context.Context, id int64) error
}

type noteService struct {
	client  client.Client
	headers HeaderProvider
	log     logging.Logger
}

// NewNoteService builds a NoteService. headers is consulted right before
// every request, so a logout takes effect on the next call.
func NewNoteService(client client.Client, headers HeaderProvider, log logging.Logger) NoteService {
	return &noteService{client: client, headers: headers, log: log}
}

func (s *noteService) ListAll(ctx context.Context) ([]models.Note, error) {
	notes, err := s.client.ListNotes(ctx, s.headers.AuthHeader(ctx))
	if err != nil {
		s.log.Warn(ctx, "listing notes failed", "error", err)
		return nil, err
	}
	s.log.Debug(ctx, "notes listed", "count", len(notes))
	return notes, nil
}

func (s *noteService) Create(ctx context.Context, content string) error {
	if err := s.client.CreateNote(ctx, s.headers.AuthHeader(ctx), content); err != nil {
		s.log.Warn(ctx, "creating note failed", "error", err)
		return err
	}
	return nil
}

func (s *noteService) Delete(ctx context.Context, id int64) error {
	if err := s.client.DeleteNote(ctx, s.headers.AuthHeader(ctx), id); err != nil {
		s.log.Warn(ctx, "deleting note failed", "id", id, "error", err)
		return err
	}
	return nil
}

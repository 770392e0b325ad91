package models

import (
	"time"

	"github.com/dmitrijs2005/gophdiary/internal/timex"
)

// Note is a single diary entry. Notes are owned by the server; the client
// never changes one in place.
type Note struct {
	ID        int64
	Content   string
	CreatedAt time.Time
}

// NoteDTO is the wire form of a Note.
type NoteDTO struct {
	ID        int64           `json:"id"`
	Content   string          `json:"content"`
	CreatedAt timex.Timestamp `json:"createdAt"`
}

func (d NoteDTO) ToModel() Note {
	return Note{ID: d.ID, Content: d.Content, CreatedAt: d.CreatedAt.Time}
}

// CreateNoteRequest is the body of a note creation call.
type CreateNoteRequest struct {
	Content string `json:"content"`
}

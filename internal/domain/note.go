package domain

import "time"

// Note is a titled, optionally-bodied text record. Notes are never updated
// after creation.
type Note struct {
	NoteID    string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"notblank"`
	Content string `json:"content"`
}

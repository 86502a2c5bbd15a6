// Package ui holds the client-side view state for the notes list and the
// formatting rules shared by the terminal client.
package ui

import (
	"errors"
	"strings"
	"time"

	"github.com/go-notes-nosql/internal/domain"
)

// ErrTitleRequired is returned by ValidateTitle for blank titles.
var ErrTitleRequired = errors.New("please enter a title")

// NoteList is an immutable, newest-first list of notes. Every update
// returns a new NoteList and leaves the receiver untouched.
type NoteList struct {
	notes []domain.Note
}

// ReplaceAll returns a list holding a copy of notes.
func (l NoteList) ReplaceAll(notes []domain.Note) NoteList {
	return NoteList{notes: append([]domain.Note(nil), notes...)}
}

// Add returns a list with n prepended.
func (l NoteList) Add(n domain.Note) NoteList {
	out := make([]domain.Note, 0, len(l.notes)+1)
	out = append(out, n)
	out = append(out, l.notes...)
	return NoteList{notes: out}
}

// Remove returns a list without the note identified by id.
func (l NoteList) Remove(id string) NoteList {
	out := make([]domain.Note, 0, len(l.notes))
	for _, n := range l.notes {
		if n.NoteID != id {
			out = append(out, n)
		}
	}
	return NoteList{notes: out}
}

func (l NoteList) Len() int { return len(l.notes) }

// Notes returns a copy of the underlying slice, never nil.
func (l NoteList) Notes() []domain.Note {
	out := make([]domain.Note, len(l.notes))
	copy(out, l.notes)
	return out
}

// ValidateTitle checks the form title before anything is sent.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	return nil
}

// createdAtLayout renders e.g. "Mar 5, 02:07 PM".
const createdAtLayout = "Jan 2, 03:04 PM"

// FormatCreatedAt renders t in loc (time.Local when nil).
func FormatCreatedAt(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(createdAtLayout)
}

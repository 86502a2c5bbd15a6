// Package memory is a process-local note store used for development and tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/go-notes-nosql/internal/domain"
)

// NoteRepo keeps notes in a map guarded by a RWMutex. It mirrors the
// ordering and not-found behaviour of the DynamoDB repo.
type NoteRepo struct {
	mu    sync.RWMutex
	notes map[string]domain.Note
}

func NewNoteRepo() *NoteRepo {
	return &NoteRepo{notes: make(map[string]domain.Note)}
}

func (r *NoteRepo) Put(_ context.Context, n *domain.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notes[n.NoteID]; ok {
		return fmt.Errorf("note %s already exists", n.NoteID)
	}
	r.notes[n.NoteID] = *n
	return nil
}

func (r *NoteRepo) Get(_ context.Context, noteID string) (*domain.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.notes[noteID]
	if !ok {
		return nil, fmt.Errorf("note not found: %w", domain.ErrNotFound)
	}
	return &n, nil
}

// List returns a copy of every note, newest first. Ties on createdAt fall
// back to the id, which is time-ordered.
func (r *NoteRepo) List(_ context.Context) ([]domain.Note, error) {
	r.mu.RLock()
	out := make([]domain.Note, 0, len(r.notes))
	for _, n := range r.notes {
		out = append(out, n)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].NoteID > out[j].NoteID
	})
	return out, nil
}

func (r *NoteRepo) Delete(_ context.Context, noteID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.notes, noteID)
	return nil
}

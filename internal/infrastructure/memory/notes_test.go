package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-notes-nosql/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteRepo_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	r := NewNoteRepo()
	n := &domain.Note{NoteID: "a", Title: "A", CreatedAt: time.Now().UTC()}

	require.NoError(t, r.Put(ctx, n))
	assert.Error(t, r.Put(ctx, n), "duplicate id must be rejected")

	got, err := r.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, *n, *got)

	require.NoError(t, r.Delete(ctx, "a"))
	_, err = r.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNoteRepo_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	r := NewNoteRepo()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, r.Put(ctx, &domain.Note{NoteID: "01", CreatedAt: base}))
	require.NoError(t, r.Put(ctx, &domain.Note{NoteID: "03", CreatedAt: base.Add(2 * time.Second)}))
	require.NoError(t, r.Put(ctx, &domain.Note{NoteID: "02", CreatedAt: base.Add(time.Second)}))
	require.NoError(t, r.Put(ctx, &domain.Note{NoteID: "04", CreatedAt: base.Add(2 * time.Second)}))

	notes, err := r.List(ctx)
	require.NoError(t, err)
	ids := make([]string, len(notes))
	for i, n := range notes {
		ids[i] = n.NoteID
	}
	assert.Equal(t, []string{"04", "03", "02", "01"}, ids)
}

func TestNoteRepo_ListEmpty(t *testing.T) {
	notes, err := NewNoteRepo().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestNoteRepo_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	r := NewNoteRepo()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = r.Put(ctx, &domain.Note{NoteID: fmt.Sprintf("n%02d", i), CreatedAt: time.Now()})
			_, _ = r.List(ctx)
		}(i)
	}
	wg.Wait()
	notes, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 50)
}

package ui

import (
	"testing"
	"time"

	"github.com/go-notes-nosql/internal/domain"
	"github.com/stretchr/testify/assert"
)

func ids(l NoteList) []string {
	var out []string
	for _, n := range l.Notes() {
		out = append(out, n.NoteID)
	}
	return out
}

func TestNoteList_UpdatesDoNotMutate(t *testing.T) {
	src := []domain.Note{{NoteID: "2"}, {NoteID: "1"}}
	base := NoteList{}.ReplaceAll(src)
	src[0].NoteID = "changed"
	assert.Equal(t, []string{"2", "1"}, ids(base))

	added := base.Add(domain.Note{NoteID: "3"})
	assert.Equal(t, []string{"3", "2", "1"}, ids(added))
	assert.Equal(t, []string{"2", "1"}, ids(base))

	removed := added.Remove("2")
	assert.Equal(t, []string{"3", "1"}, ids(removed))
	assert.Equal(t, 3, added.Len())

	assert.Equal(t, 2, removed.Remove("missing").Len())
}

func TestNoteList_Zero(t *testing.T) {
	var l NoteList
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Notes())
}

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, ValidateTitle("Groceries"))
	assert.ErrorIs(t, ValidateTitle(""), ErrTitleRequired)
	assert.ErrorIs(t, ValidateTitle("  \t"), ErrTitleRequired)
}

func TestFormatCreatedAt(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC)
	assert.Equal(t, "Mar 5, 02:07 PM", FormatCreatedAt(ts, time.UTC))

	plus2 := time.FixedZone("P2", 2*3600)
	assert.Equal(t, "Mar 5, 04:07 PM", FormatCreatedAt(ts, plus2))
}

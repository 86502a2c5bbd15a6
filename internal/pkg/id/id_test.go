package id

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IsValidULID(t *testing.T) {
	s := New()
	_, err := ulid.ParseStrict(s)
	require.NoError(t, err)
	assert.NotEqual(t, s, New())
}

func TestAt_EncodesTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	u, err := ulid.ParseStrict(At(ts))
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(ts), u.Time())
}

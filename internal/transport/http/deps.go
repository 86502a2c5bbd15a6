package http

import (
	"context"

	"github.com/go-notes-nosql/internal/domain"
	"github.com/go-notes-nosql/internal/transport/http/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// NoteRepository is the minimal interface the router requires from a note store.
// Both dynamo.NoteRepo and memory.NoteRepo satisfy it.
type NoteRepository interface {
	List(ctx context.Context) ([]domain.Note, error)
	Get(ctx context.Context, noteID string) (*domain.Note, error)
	Put(ctx context.Context, n *domain.Note) error
	Delete(ctx context.Context, noteID string) error
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	NoteRepo NoteRepository
	// Registry receives the HTTP collectors and backs /metrics.
	Registry *prometheus.Registry
	// WriteLimiter throttles POST/DELETE per client IP; nil disables it.
	WriteLimiter *middleware.RateLimiter
}

package note

import (
	"context"
	"fmt"
	"time"

	"github.com/go-notes-nosql/internal/domain"
	"github.com/go-notes-nosql/internal/pkg/id"
	"github.com/go-notes-nosql/internal/pkg/validate"
)

type Service interface {
	List(ctx context.Context) ([]domain.Note, error)
	Create(ctx context.Context, req domain.CreateNoteRequest) (*domain.Note, error)
	Delete(ctx context.Context, noteID string) error // hard delete
}

type noteStore interface {
	List(ctx context.Context) ([]domain.Note, error)
	Get(ctx context.Context, noteID string) (*domain.Note, error)
	Put(ctx context.Context, n *domain.Note) error
	Delete(ctx context.Context, noteID string) error
}

type service struct {
	repo noteStore
	now  func() time.Time
}

// Option customises a Service.
type Option func(*service)

// WithClock overrides the time source used for createdAt.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func NewService(repo noteStore, opts ...Option) Service {
	s := &service{repo: repo, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// List returns every note, newest first. A nil result from the store is
// normalised so callers always serialise an array.
func (s *service) List(ctx context.Context) ([]domain.Note, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if notes == nil {
		notes = []domain.Note{}
	}
	return notes, nil
}

func (s *service) Create(ctx context.Context, req domain.CreateNoteRequest) (*domain.Note, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	now := s.now().UTC()
	n := &domain.Note{
		NoteID:    id.At(now),
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
	}
	if err := s.repo.Put(ctx, n); err != nil {
		return nil, fmt.Errorf("put note: %w", err)
	}
	return n, nil
}

// Delete looks the note up first so a missing id is reported as
// domain.ErrNotFound instead of silently succeeding.
func (s *service) Delete(ctx context.Context, noteID string) error {
	if _, err := s.repo.Get(ctx, noteID); err != nil {
		return fmt.Errorf("get note %s: %w", noteID, err)
	}
	if err := s.repo.Delete(ctx, noteID); err != nil {
		return fmt.Errorf("delete note %s: %w", noteID, err)
	}
	return nil
}

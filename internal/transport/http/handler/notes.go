package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-notes-nosql/internal/application/note"
	"github.com/go-notes-nosql/internal/domain"
)

// Client-visible messages. Store failures only ever surface as the
// generic "Failed to ..." strings.
const (
	msgListFailed   = "Failed to get notes"
	msgCreateFailed = "Failed to create note"
	msgDeleteFailed = "Failed to delete note"
	msgTitleMissing = "Title is required"
	msgNotFound     = "Note not found"
	msgDeleted      = "Note deleted successfully"
	msgInvalidBody  = "invalid request body"
	msgBodyTooLarge = "request body too large"
)

// maxNoteBodyBytes caps the create-note request body.
const maxNoteBodyBytes = 1 << 20

// NoteHandler handles note endpoints.
type NoteHandler struct {
	svc note.Service
}

func NewNoteHandler(svc note.Service) *NoteHandler { return &NoteHandler{svc: svc} }

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.List(r.Context())
	if err != nil {
		serverError(w, r, msgListFailed, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxNoteBodyBytes)
	var req domain.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			return
		}
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	created, err := h.svc.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrBadRequest) {
			writeError(w, http.StatusBadRequest, msgTitleMissing)
			return
		}
		serverError(w, r, msgCreateFailed, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Delete is a hard delete; a missing id is a 404 and changes nothing.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgNotFound)
			return
		}
		serverError(w, r, msgDeleteFailed, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: msgDeleted})
}

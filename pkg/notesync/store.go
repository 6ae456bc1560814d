// Package notesync keeps a client-side mirror of the user's notes in
// sync with the server. The local snapshot only changes after the
// server confirms a mutation; nothing is applied optimistically, so a
// rejected edit is never shown.
package notesync

import (
	"context"
	"sync"

	"github.com/shreyansh1410/aiNotes/pkg/notesapi"
)

// Snapshot is a point-in-time copy of the store state for the UI.
type Snapshot struct {
	Notes   []notesapi.Note
	Loading bool
	Err     string
}

// Store is an explicit state container: construct one per UI context
// instead of sharing a global.
type Store struct {
	mu  sync.Mutex
	api notesapi.API

	notes   []notesapi.Note
	loading bool
	err     string

	// Per-note response fencing. Each mutation takes a sequence number
	// when it is initiated; a response is discarded when a
	// later-initiated mutation for the same note has already been
	// applied, so a slow early request cannot overwrite a newer write.
	seq     uint64
	applied map[string]uint64
}

func New(api notesapi.API) *Store {
	return &Store{
		api:     api,
		applied: make(map[string]uint64),
	}
}

// Snapshot returns a copy of the current state. The returned slice is
// the caller's to keep.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	notes := make([]notesapi.Note, len(s.notes))
	copy(notes, s.notes)
	return Snapshot{Notes: notes, Loading: s.loading, Err: s.err}
}

func (s *Store) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = ""
	s.seq++
	return s.seq
}

// FetchAll replaces the local note sequence with the server's. A failed
// refresh records the error and leaves the previous snapshot intact.
func (s *Store) FetchAll(ctx context.Context) {
	s.begin()

	notes, err := s.api.ListNotes(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = "Failed to fetch notes"
		return
	}
	s.notes = notes
}

// Create appends the server-returned note (with its assigned id and
// timestamp) on success. The error is returned so the UI can react to
// this specific failure.
func (s *Store) Create(ctx context.Context, draft notesapi.NoteDraft) error {
	seq := s.begin()

	note, err := s.api.CreateNote(ctx, draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = "Failed to create note"
		return err
	}
	s.notes = append(s.notes, *note)
	s.applied[note.ID] = seq
	return nil
}

// Update patches a note and merges the confirmed result into the local
// entry. Local state is not rolled back on failure because nothing was
// applied before confirmation.
func (s *Store) Update(ctx context.Context, id string, patch notesapi.NotePatch) error {
	seq := s.begin()

	note, err := s.api.UpdateNote(ctx, id, patch)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = "Failed to update note"
		return err
	}
	s.reconcile(id, seq, note)
	return nil
}

// Delete reports success as a boolean so the caller can branch on the
// toast message without error handling.
func (s *Store) Delete(ctx context.Context, id string) bool {
	seq := s.begin()

	err := s.api.DeleteNote(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = "Failed to delete note"
		return false
	}
	if seq > s.applied[id] {
		s.applied[id] = seq
		for i, n := range s.notes {
			if n.ID == id {
				s.notes = append(s.notes[:i], s.notes[i+1:]...)
				break
			}
		}
	}
	return true
}

// ToggleFavorite sends the inverse of the locally known flag and adopts
// the server's full returned note, so any server-derived fields win over
// the local guess.
func (s *Store) ToggleFavorite(ctx context.Context, id string) bool {
	s.mu.Lock()
	var current *notesapi.Note
	for i := range s.notes {
		if s.notes[i].ID == id {
			current = &s.notes[i]
			break
		}
	}
	if current == nil {
		s.mu.Unlock()
		return false
	}
	next := !current.IsFavorite
	s.mu.Unlock()

	seq := s.begin()

	note, err := s.api.UpdateNote(ctx, id, notesapi.NotePatch{IsFavorite: &next})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = "Failed to update note"
		return false
	}
	s.reconcile(id, seq, note)
	return true
}

// reconcile applies a confirmed server note unless a later-initiated
// mutation for the same id already landed. Caller holds s.mu.
func (s *Store) reconcile(id string, seq uint64, note *notesapi.Note) {
	if seq <= s.applied[id] {
		return
	}
	s.applied[id] = seq
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes[i] = *note
			return
		}
	}
}

package notesync

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/shreyansh1410/aiNotes/pkg/notesapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI scripts per-call results. updateHook, when set, runs inside
// UpdateNote so tests can control response ordering.
type fakeAPI struct {
	mu         sync.Mutex
	listNotes  []notesapi.Note
	listErr    error
	createErr  error
	updateErr  error
	deleteErr  error
	nextID     int
	updateHook func(id string, patch notesapi.NotePatch)
	notes      map[string]notesapi.Note
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{notes: make(map[string]notesapi.Note)}
}

func (f *fakeAPI) ListNotes(ctx context.Context) ([]notesapi.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]notesapi.Note, len(f.listNotes))
	copy(out, f.listNotes)
	return out, nil
}

func (f *fakeAPI) CreateNote(ctx context.Context, draft notesapi.NoteDraft) (*notesapi.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	note := notesapi.Note{
		ID:          string(rune('a' + f.nextID)),
		Title:       draft.Title,
		Content:     draft.Content,
		IsAudioNote: draft.IsAudioNote,
		IsFavorite:  draft.IsFavorite,
		CreatedAt:   time.Now(),
	}
	f.notes[note.ID] = note
	return &note, nil
}

func (f *fakeAPI) UpdateNote(ctx context.Context, id string, patch notesapi.NotePatch) (*notesapi.Note, error) {
	if f.updateHook != nil {
		f.updateHook(id, patch)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	note, ok := f.notes[id]
	if !ok {
		note = notesapi.Note{ID: id}
	}
	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	if patch.IsFavorite != nil {
		note.IsFavorite = *patch.IsFavorite
	}
	f.notes[id] = note
	return &note, nil
}

func (f *fakeAPI) DeleteNote(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.notes, id)
	return nil
}

func (f *fakeAPI) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	return "http://example.com/uploads/" + filename, nil
}

func seedStore(t *testing.T, api *fakeAPI, titles ...string) (*Store, []string) {
	t.Helper()
	store := New(api)
	ids := make([]string, 0, len(titles))
	for _, title := range titles {
		require.NoError(t, store.Create(context.Background(), notesapi.NoteDraft{Title: title}))
	}
	for _, n := range store.Snapshot().Notes {
		ids = append(ids, n.ID)
	}
	return store, ids
}

func TestFetchAllReplacesSnapshot(t *testing.T) {
	api := newFakeAPI()
	api.listNotes = []notesapi.Note{{ID: "n1", Title: "Server note"}}
	store := New(api)

	store.FetchAll(context.Background())

	snap := store.Snapshot()
	require.Len(t, snap.Notes, 1)
	assert.Equal(t, "Server note", snap.Notes[0].Title)
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Err)
}

func TestFetchAllFailurePreservesPreviousSnapshot(t *testing.T) {
	api := newFakeAPI()
	api.listNotes = []notesapi.Note{{ID: "n1", Title: "Loaded"}}
	store := New(api)
	store.FetchAll(context.Background())

	api.mu.Lock()
	api.listErr = errors.New("boom")
	api.mu.Unlock()

	store.FetchAll(context.Background())

	snap := store.Snapshot()
	require.Len(t, snap.Notes, 1)
	assert.Equal(t, "Loaded", snap.Notes[0].Title)
	assert.Equal(t, "Failed to fetch notes", snap.Err)
	assert.False(t, snap.Loading)
}

func TestCreateAppendsServerNote(t *testing.T) {
	api := newFakeAPI()
	store := New(api)

	err := store.Create(context.Background(), notesapi.NoteDraft{Title: "New"})
	require.NoError(t, err)

	snap := store.Snapshot()
	require.Len(t, snap.Notes, 1)
	assert.Equal(t, "New", snap.Notes[0].Title)
	assert.NotEmpty(t, snap.Notes[0].ID)
}

func TestCreateFailurePropagatesError(t *testing.T) {
	api := newFakeAPI()
	api.createErr = errors.New("boom")
	store := New(api)

	err := store.Create(context.Background(), notesapi.NoteDraft{Title: "New"})
	assert.Error(t, err)

	snap := store.Snapshot()
	assert.Empty(t, snap.Notes)
	assert.Equal(t, "Failed to create note", snap.Err)
}

func TestUpdateMergesConfirmedNote(t *testing.T) {
	api := newFakeAPI()
	store, ids := seedStore(t, api, "Before")

	title := "After"
	err := store.Update(context.Background(), ids[0], notesapi.NotePatch{Title: &title})
	require.NoError(t, err)

	snap := store.Snapshot()
	require.Len(t, snap.Notes, 1)
	assert.Equal(t, "After", snap.Notes[0].Title)
}

func TestUpdateFailureLeavesLocalStateAlone(t *testing.T) {
	api := newFakeAPI()
	store, ids := seedStore(t, api, "Stable")

	api.mu.Lock()
	api.updateErr = errors.New("boom")
	api.mu.Unlock()

	title := "Never applied"
	err := store.Update(context.Background(), ids[0], notesapi.NotePatch{Title: &title})
	assert.Error(t, err)

	snap := store.Snapshot()
	require.Len(t, snap.Notes, 1)
	assert.Equal(t, "Stable", snap.Notes[0].Title)
}

func TestDeleteReturnsBool(t *testing.T) {
	api := newFakeAPI()
	store, ids := seedStore(t, api, "Doomed")

	ok := store.Delete(context.Background(), ids[0])
	assert.True(t, ok)
	assert.Empty(t, store.Snapshot().Notes)

	api.mu.Lock()
	api.deleteErr = errors.New("boom")
	api.mu.Unlock()

	require.NoError(t, store.Create(context.Background(), notesapi.NoteDraft{Title: "Survivor"}))
	id := store.Snapshot().Notes[0].ID

	ok = store.Delete(context.Background(), id)
	assert.False(t, ok)
	assert.Len(t, store.Snapshot().Notes, 1)
}

func TestToggleFavoriteRoundTripsServerValue(t *testing.T) {
	api := newFakeAPI()
	store, ids := seedStore(t, api, "Fav me")

	ok := store.ToggleFavorite(context.Background(), ids[0])
	assert.True(t, ok)
	assert.True(t, store.Snapshot().Notes[0].IsFavorite)

	ok = store.ToggleFavorite(context.Background(), ids[0])
	assert.True(t, ok)
	assert.False(t, store.Snapshot().Notes[0].IsFavorite)
}

func TestToggleFavoriteUnknownNote(t *testing.T) {
	api := newFakeAPI()
	store := New(api)

	assert.False(t, store.ToggleFavorite(context.Background(), "ghost"))
}

func TestStaleResponseDoesNotOverwriteNewerWrite(t *testing.T) {
	api := newFakeAPI()
	store, ids := seedStore(t, api, "v0")
	id := ids[0]

	firstInFlight := make(chan struct{})
	releaseFirst := make(chan struct{})

	var once sync.Once
	api.updateHook = func(_ string, patch notesapi.NotePatch) {
		if patch.Title != nil && *patch.Title == "first" {
			once.Do(func() { close(firstInFlight) })
			<-releaseFirst
		}
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		title := "first"
		_ = store.Update(context.Background(), id, notesapi.NotePatch{Title: &title})
	}()

	// Wait until the earlier-initiated update is suspended at the
	// round trip, then let a later-initiated update complete fully.
	<-firstInFlight
	title := "second"
	require.NoError(t, store.Update(context.Background(), id, notesapi.NotePatch{Title: &title}))
	assert.Equal(t, "second", store.Snapshot().Notes[0].Title)

	// Release the stale response; it must be discarded.
	close(releaseFirst)
	wg.Wait()

	assert.Equal(t, "second", store.Snapshot().Notes[0].Title)
}

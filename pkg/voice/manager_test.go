package voice

import (
	"testing"
	"time"

	"github.com/shreyansh1410/aiNotes/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerOneSessionPerKey(t *testing.T) {
	m := NewManager(time.Minute, time.Minute)
	rec := &fakeRecognizer{}

	_, err := m.Start("user-1", rec, nil)
	require.NoError(t, err)

	_, err = m.Start("user-1", &fakeRecognizer{}, nil)
	assert.ErrorIs(t, err, apperr.ErrAlreadyActive)

	// A different key is unaffected.
	_, err = m.Start("user-2", &fakeRecognizer{}, nil)
	assert.NoError(t, err)
}

func TestManagerStopReturnsTranscript(t *testing.T) {
	m := NewManager(time.Minute, time.Minute)
	rec := &fakeRecognizer{}

	_, err := m.Start("user-1", rec, nil)
	require.NoError(t, err)
	rec.emit("note to self", true)

	text, stopped := m.Stop("user-1")
	assert.True(t, stopped)
	assert.Equal(t, "note to self", text)

	// Stopped key can start again.
	_, err = m.Start("user-1", &fakeRecognizer{}, nil)
	assert.NoError(t, err)
}

func TestManagerStopUnknownKey(t *testing.T) {
	m := NewManager(time.Minute, time.Minute)

	text, stopped := m.Stop("nobody")
	assert.False(t, stopped)
	assert.Empty(t, text)
}

func TestManagerEvictionReleasesAbandonedSession(t *testing.T) {
	m := NewManager(30*time.Millisecond, 10*time.Millisecond)
	rec := &fakeRecognizer{}

	_, err := m.Start("user-1", rec, nil)
	require.NoError(t, err)
	rec.emit("abandoned", true)

	// No manual stop: the janitor must evict and finalize the session.
	assert.Eventually(t, func() bool {
		return rec.stopCount() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

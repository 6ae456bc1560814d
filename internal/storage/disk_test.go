package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "http://localhost:3000/uploads/")
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "photo.png", strings.NewReader("fake-png-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:3000/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	// The stored name must not reuse the client-supplied filename.
	assert.NotContains(t, url, "photo")

	name := url[strings.LastIndex(url, "/")+1:]
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "fake-png-bytes", string(data))
}

func TestDiskStoreCancelledContext(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "http://localhost/uploads")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Save(ctx, "a.jpg", strings.NewReader("x"))
	assert.Error(t, err)
}

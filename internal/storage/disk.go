// Package storage is the opaque image blob store. The rest of the system
// only ever sees the returned URL string.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shreyansh1410/aiNotes/internal/pkg/apperr"

	"github.com/google/uuid"
)

type BlobStore interface {
	// Save persists the blob and returns a retrievable URL.
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// DiskStore writes blobs under a local directory that the server exposes
// as a static route.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w: %v", apperr.ErrStorage, err)
	}
	return &DiskStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *DiskStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Client filename is untrusted; only its extension survives.
	ext := filepath.Ext(filepath.Base(filename))
	name := uuid.New().String() + ext

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create blob: %w: %v", apperr.ErrStorage, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write blob: %w: %v", apperr.ErrStorage, err)
	}

	return s.baseURL + "/" + name, nil
}

// blob_store.go - Byte-blob persistence collaborator

package main

import (
	"errors"
	"io/fs"
	"os"

	log "github.com/sirupsen/logrus"
)

// Blob is a loaded or freshly created byte buffer bound to a path.
// Writable blobs are flushed to their path on Unload.
type Blob struct {
	Path     string
	Bytes    []byte
	writable bool
}

// Len returns the blob size in bytes.
func (b *Blob) Len() int {
	return len(b.Bytes)
}

// BlobStore abstracts file persistence so the codec and the
// poke-from-file path never touch the filesystem directly.
type BlobStore interface {
	// Load reads path; a missing file yields an empty read-only blob,
	// not an error.
	Load(path string) *Blob

	// Create returns a writable blob of the given size, flushed on
	// Unload.
	Create(path string, size int) (*Blob, error)

	// Unload releases the blob, writing it out first if writable.
	Unload(blob *Blob) error
}

// FileStore is the on-disk BlobStore.
type FileStore struct{}

func (FileStore) Load(path string) *Blob {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.WithError(err).WithField("path", path).Warn("blob load failed")
		}
		return &Blob{Path: path}
	}
	return &Blob{Path: path, Bytes: data}
}

func (FileStore) Create(path string, size int) (*Blob, error) {
	if size < 0 {
		return nil, &AllocError{Op: "create", Path: path, Err: errors.New("negative size")}
	}
	return &Blob{Path: path, Bytes: make([]byte, size), writable: true}, nil
}

func (FileStore) Unload(blob *Blob) error {
	if blob == nil || !blob.writable {
		return nil
	}
	if err := os.WriteFile(blob.Path, blob.Bytes, 0644); err != nil {
		return &AllocError{Op: "unload", Path: blob.Path, Err: err}
	}
	return nil
}

// MemStore keeps blobs in a map. Used by tests and by script hosts
// that convert images without touching disk.
type MemStore struct {
	Files map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{Files: make(map[string][]byte)}
}

func (m *MemStore) Load(path string) *Blob {
	data, ok := m.Files[path]
	if !ok {
		return &Blob{Path: path}
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return &Blob{Path: path, Bytes: buf}
}

func (m *MemStore) Create(path string, size int) (*Blob, error) {
	if size < 0 {
		return nil, &AllocError{Op: "create", Path: path, Err: errors.New("negative size")}
	}
	return &Blob{Path: path, Bytes: make([]byte, size), writable: true}, nil
}

func (m *MemStore) Unload(blob *Blob) error {
	if blob == nil || !blob.writable {
		return nil
	}
	m.Files[blob.Path] = blob.Bytes
	return nil
}

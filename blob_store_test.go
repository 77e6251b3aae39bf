// blob_store_test.go - Blob store tests

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_Roundtrip(t *testing.T) {
	store := FileStore{}
	path := filepath.Join(t.TempDir(), "blob.bin")

	blob, err := store.Create(path, 4)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	copy(blob.Bytes, []byte{1, 2, 3, 4})
	if err := store.Unload(blob); err != nil {
		t.Fatalf("Unload failed: %v", err)
	}

	loaded := store.Load(path)
	if !bytes.Equal(loaded.Bytes, []byte{1, 2, 3, 4}) {
		t.Errorf("Load = %x, expected 01020304", loaded.Bytes)
	}
	if err := store.Unload(loaded); err != nil {
		t.Errorf("Unload of read-only blob failed: %v", err)
	}
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	store := FileStore{}
	blob := store.Load(filepath.Join(t.TempDir(), "absent.bin"))
	if blob.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", blob.Len())
	}
}

func TestFileStore_DestinationOnlyWrittenOnUnload(t *testing.T) {
	store := FileStore{}
	path := filepath.Join(t.TempDir(), "late.bin")

	blob, err := store.Create(path, 8)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("destination exists before Unload")
	}
	if err := store.Unload(blob); err != nil {
		t.Fatalf("Unload failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("destination missing after Unload: %v", err)
	}
}

func TestMemStore_Isolation(t *testing.T) {
	store := NewMemStore()
	store.Files["a"] = []byte{1, 2, 3}

	blob := store.Load("a")
	blob.Bytes[0] = 99
	if store.Files["a"][0] != 1 {
		t.Error("Load returned an aliased buffer")
	}
}

package kvstore_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"taskflow/pkg/kvstore"
)

func newStore(t *testing.T) *kvstore.FileStore {
	t.Helper()
	s, err := kvstore.NewFileStore(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return s
}

func TestFileStore_GetMissing(t *testing.T) {
	s := newStore(t)
	if _, err := s.Get(context.Background(), "tasks"); !errors.Is(err, kvstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFileStore_PutGetOverwrite(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	if err := s.Put(ctx, "tasks", []byte(`[1]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(ctx, "tasks", []byte(`[1,2]`)); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}

	got, err := s.Get(ctx, "tasks")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `[1,2]` {
		t.Errorf("expected last value, got %s", got)
	}

	entries, _ := os.ReadDir(s.Dir())
	if len(entries) != 1 {
		t.Errorf("expected only the value file after writes, found %d entries", len(entries))
	}
}

func TestFileStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	if err := s.Delete(ctx, "tasks"); err != nil {
		t.Errorf("deleting absent key: %v", err)
	}
	_ = s.Put(ctx, "tasks", []byte(`[]`))
	if err := s.Delete(ctx, "tasks"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, "tasks"); !errors.Is(err, kvstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestFileStore_InvalidKey(t *testing.T) {
	s := newStore(t)
	for _, key := range []string{"", "..", "a/b", "../escape"} {
		if err := s.Put(context.Background(), key, nil); !errors.Is(err, kvstore.ErrInvalidKey) {
			t.Errorf("key %q: expected ErrInvalidKey, got %v", key, err)
		}
	}
}

func TestFileStore_CancelledContext(t *testing.T) {
	s := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Put(ctx, "tasks", []byte(`[]`)); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

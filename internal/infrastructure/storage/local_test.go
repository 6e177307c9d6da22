package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStore_SaveOpenDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "patients")
	store, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	ctx := context.Background()

	ref, err := store.Save(ctx, "7.jpg", bytes.NewReader([]byte("first")))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if ref != "7.jpg" {
		t.Errorf("expected ref 7.jpg, got %q", ref)
	}

	if _, err := store.Save(ctx, "7.jpg", bytes.NewReader([]byte("second"))); err != nil {
		t.Fatalf("Save replace: %v", err)
	}

	rc, err := store.Open(ctx, ref)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	got, _ := io.ReadAll(rc)
	rc.Close()
	if string(got) != "second" {
		t.Errorf("expected replaced content, got %q", got)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected no leftover temp files, got %d entries", len(entries))
	}

	if err := store.Delete(ctx, ref); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Open(ctx, ref); !errors.Is(err, ErrPhotoNotFound) {
		t.Errorf("expected ErrPhotoNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, ref); err != nil {
		t.Errorf("deleting a missing photo should succeed, got %v", err)
	}
}

func TestLocalStore_RefCannotEscapeDir(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(filepath.Join(root, "uploads"))
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	ref, err := store.Save(context.Background(), "../../escape.jpg", bytes.NewReader([]byte("x")))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if ref != "escape.jpg" {
		t.Errorf("expected sanitized ref, got %q", ref)
	}
	if _, err := os.Stat(filepath.Join(root, "escape.jpg")); !os.IsNotExist(err) {
		t.Error("expected file to stay inside the upload dir")
	}
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStore writes photos as files under a single directory.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes to a temp file first so readers never see a partial photo.
func (s *LocalStore) Save(ctx context.Context, name string, data io.Reader) (string, error) {
	ref := filepath.Base(name)
	tmp := filepath.Join(s.dir, ".upload-"+uuid.NewString())

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create photo file: %w", err)
	}
	if _, err := io.Copy(f, data); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("write photo file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("close photo file: %w", err)
	}
	if err := os.Rename(tmp, filepath.Join(s.dir, ref)); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("move photo file: %w", err)
	}
	return ref, nil
}

func (s *LocalStore) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, filepath.Base(ref)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *LocalStore) Delete(ctx context.Context, ref string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(ref)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

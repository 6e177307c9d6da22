// Package storage keeps patient identity photos outside the relational
// store. Only the returned reference is saved on the patient row.
package storage

import (
	"context"
	"errors"
	"io"
)

var ErrPhotoNotFound = errors.New("photo not found")

type PhotoStore interface {
	// Save stores data under name, replacing any previous photo with the
	// same name, and returns the reference to persist.
	Save(ctx context.Context, name string, data io.Reader) (string, error)
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
	Delete(ctx context.Context, ref string) error
}

// Package requestid carries the per-request correlation id through
// context.Context.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header used to read and echo the id.
const Header = "X-Request-ID"

type ctxKey struct{}

// New returns a fresh random id.
func New() string {
	return uuid.NewString()
}

func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the id stored in ctx, or "" when there is none.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Package metadata provides a small durable key/value store for client-side
// session metadata (currently just the auth credential).
package metadata

import (
	"context"
)

// Repository is a durable string key/value store. Get returns ("", nil)
// when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Package metadata stores small key/value records in the local client
// database. The diary client keeps its persisted session here.
package metadata

import (
	"context"
)

// Repository is a key/value store. Get returns (nil, nil) for a missing key;
// Delete succeeds when there is nothing to remove.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

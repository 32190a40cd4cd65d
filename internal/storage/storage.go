// Package storage defines the persistence substrate the alert engine is
// written against: a flat key-value store with prefix iteration.
package storage

import "context"

type Entry struct {
	Key   string
	Value []byte
}

// KV is satisfied by the memory, redis and postgres backends.
// Get returns e.ErrNotFound for a missing key. Delete of a missing key is a
// no-op. Scan returns entries whose key starts with prefix, ordered by key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	Scan(ctx context.Context, prefix string) ([]Entry, error)
}

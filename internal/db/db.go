// Package db abstracts the document database. Repositories depend on the
// narrow consumer interfaces they need, never on a driver type.
package db

import (
	"context"
	"time"
)

// Store is the main database facade combining all sub-interfaces.
type Store interface {
	Pinger
	JSONStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// JSONStore provides JSON document operations. Filtering and aggregation are
// not store primitives here: callers enumerate keys with Scan, hydrate them
// with JSONGetMulti and evaluate their own predicates over the stream.
type JSONStore interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	// JSONGetMulti fetches one path from many keys in a single pipelined
	// round-trip. A key deleted between Scan and fetch yields a nil entry.
	JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

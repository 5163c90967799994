package repository

import "context"

// Persisted state is a set of independent JSON blobs under fixed string
// keys. There is no versioning or migration scheme; readers tolerate
// schema drift by ignoring unknown fields and defaulting missing ones.
const (
	// KeySharedPortfolios holds the full list of published ShareRecords.
	KeySharedPortfolios = "shared-portfolios"
	// KeyThemePreference holds the editor's "light"/"dark" preference.
	KeyThemePreference = "theme-preference"
)

// BlobStore reads and writes one JSON-serialized blob per key. Get
// returns (nil, nil) when the key has never been written. Writes
// replace the whole blob: callers do read-modify-write, which is
// last-write-wins for the file backend and a transactional upsert for
// the postgres backend.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}

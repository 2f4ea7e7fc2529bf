// Package kvstore defines the key-value persistence capability behind which
// all application state (registry, session, draft, language preference) is
// stored, plus in-memory, SQLite and Postgres implementations.
//
// Get returns (nil, nil) for a missing key so callers can distinguish
// "absent" from "failed to read" without a sentinel.
package kvstore

import "context"

// Well-known keys. Every blob is rewritten whole on mutation; there is no
// incremental update.
const (
	KeyUsers    = "users"
	KeySession  = "session"
	KeyDraft    = "draft"
	KeyLanguage = "language"
)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

package domain

import (
	"context"
	"io"
)

// RecordStore is the durable home of the full hotel collection. There is no
// partial read or append: every load deserializes the whole file and every
// save replaces it.
type RecordStore interface {
	LoadAll(ctx context.Context) ([]Hotel, error)
	SaveAll(ctx context.Context, hotels []Hotel) error
}

// FileStore persists uploaded image bytes and maps stored names to the public
// URLs they are served under.
type FileStore interface {
	// Save writes r under a generated unique name derived from origName and
	// returns the stored name.
	Save(ctx context.Context, origName string, r io.Reader) (string, error)
	URL(storedName string) string
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

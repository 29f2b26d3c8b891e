package object

import (
	"context"
	"io"
)

// Stored describes an uploaded document after it has been persisted.
type Stored struct {
	Key         string `json:"key"`
	Size        int64  `json:"sizeBytes"`
	ContentType string `json:"contentType"`
}

// ObjectStore persists uploaded resume documents and their derived text.
type ObjectStore interface {
	// Save writes r under the owner's namespace with a random prefix.
	Save(ctx context.Context, owner string, fileName string, r io.Reader) (Stored, error)
	// SaveWithKey writes r at an exact key, overwriting any existing object.
	SaveWithKey(ctx context.Context, key string, contentType string, r io.Reader) (int64, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

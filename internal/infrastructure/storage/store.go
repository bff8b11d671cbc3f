package storage

import (
	"context"
	"io"
)

// ObjectStore stores binary assets and returns stable, publicly-resolvable
// locators. The path is already namespaced and sanitized by the caller.
type ObjectStore interface {
	Put(ctx context.Context, path, contentType string, r io.Reader) (string, error)
}

package storage

import (
	"context"
	"io"
)

// Store abstracts the object store holding site photos. The production
// deployment mounts a shared volume behind LocalStore; swapping in a
// cloud bucket only needs another implementation of this interface.
type Store interface {
	// Upload writes one object and returns its public URL.
	Upload(ctx context.Context, path string, r io.Reader) (string, error)
	// PublicURL maps an object path to the URL clients fetch it from.
	PublicURL(path string) string
	// Remove deletes objects by path. Missing objects are not an error.
	Remove(ctx context.Context, paths []string) error
	// PathFromURL reverses PublicURL; the second result reports whether
	// the URL belongs to this store.
	PathFromURL(url string) (string, bool)
}

// Package blob defines the narrow object-store port the export service
// uploads snapshots through. Drivers live in subpackages; the s3 driver is
// used in production and the memory driver backs tests.
package blob

import "context"

// Store uploads a blob under key and returns the publicly retrievable URL
// assigned by the backing store.
type Store interface {
	Upload(ctx context.Context, key string, data []byte) (string, error)
}

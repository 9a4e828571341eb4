package storage

import "context"

// Store defines the interface for external file storage
type Store interface {
	// Upload writes data under path and returns its public URL
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
}

package service

import (
	"context"
	"io"
)

// FileStore defines the interface for storing uploaded files
// (artwork files and profile images).
type FileStore interface {
	// Save writes the file content under a generated key and returns the
	// public path under which the file is served.
	Save(ctx context.Context, filename, contentType string, content io.Reader) (string, error)

	// Remove deletes a previously stored file by its public path.
	// Removing a missing file is not an error.
	Remove(ctx context.Context, path string) error
}

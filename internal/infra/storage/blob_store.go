// Package storage implements the domain FileStore on top of gocloud.dev blob
// buckets, so local disk and cloud buckets are interchangeable via config.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"artmarket/config"
	"artmarket/internal/domain/lifecycle"
	"artmarket/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket driver for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// bucket driver for production
	"gocloud.dev/gcerrors"
)

const defaultPublicBaseURL = "/uploads"

// Params holds dependencies for the blob store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// blobStore is a concrete implementation of the FileStore interface.
type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// NewBlobStore opens the configured bucket and returns it as a service.FileStore.
func NewBlobStore(params Params) (service.FileStore, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	openCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	baseURL := params.Config.Storage.PublicBaseURL
	if baseURL == "" {
		baseURL = defaultPublicBaseURL
	}

	store := &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(baseURL, "/"),
		logger:        params.Logger,
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return store, nil
}

// Save writes the file content under a timestamped key and returns the
// public path under which the file is served.
func (s *blobStore) Save(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFilename(filename))

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		// Abort the write so no partial object is committed.
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write file content")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to commit file content")
	}

	s.logger.Debug("Stored uploaded file", slog.String("key", key))

	return s.publicBaseURL + "/" + key, nil
}

// Remove deletes a previously stored file by its public path.
// Removing a missing file is not an error.
func (s *blobStore) Remove(ctx context.Context, publicPath string) error {
	if !strings.HasPrefix(publicPath, s.publicBaseURL+"/") {
		// Not one of ours, nothing to do.
		return nil
	}
	key := strings.TrimPrefix(publicPath, s.publicBaseURL+"/")

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete stored file")
	}

	return nil
}

// sanitizeFilename keeps only the base name and replaces characters that are
// unsafe in object keys or URLs.
func sanitizeFilename(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == ".." || base == "/" {
		return "file"
	}

	var cleaned strings.Builder
	cleaned.Grow(len(base))
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			cleaned.WriteRune(r)
		case r == '.', r == '-', r == '_':
			cleaned.WriteRune(r)
		default:
			cleaned.WriteRune('_')
		}
	}

	if cleaned.Len() == 0 {
		return "file"
	}

	return cleaned.String()
}

package storage

import (
	"context"
	"io"
	"time"
)

// StorageInterface is the blob-store boundary for equipment images. The
// local implementation serves demo deployments; a cloud backend can slot in
// behind the same presigned-URL contract.
type StorageInterface interface {
	// GeneratePresignedUploadURL returns a URL the client PUTs the file to.
	GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error)

	// GeneratePresignedDownloadURL returns a URL the file can be fetched from.
	GeneratePresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// FileExists checks if a file exists and returns its size.
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	// DeleteFile removes a file from storage.
	DeleteFile(ctx context.Context, key string) error

	// SaveFile and ReadFile back the local HTTP upload/download handlers;
	// they are not part of the cloud contract.
	SaveFile(key string, reader io.Reader) error
	ReadFile(key string) (io.ReadCloser, error)
}

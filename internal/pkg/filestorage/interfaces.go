package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the interface for file storage operations. Implementations
// return an addressable URL the client can fetch; production deployments may
// substitute an object-store-backed implementation.
type FileStorage interface {
	// SaveFile saves a file and returns the accessible URL where it was stored
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// SaveFileWithPath lets you specify a subdirectory for storing the file
	SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error)

	// DeleteFile removes a file from storage
	DeleteFile(filePath string) error
}

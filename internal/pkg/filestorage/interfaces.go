package filestorage

import (
	"errors"
	"mime/multipart"
)

var (
	// ErrUnsupportedFileType is returned for uploads that are not a raster image
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrFileTooLarge is returned for uploads above the storage size limit
	ErrFileTooLarge = errors.New("file too large")
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFile stores the upload under a generated name and returns that name
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a stored file; missing files are not an error
	DeleteFile(filename string) error

	// GetFullPath returns the filesystem path of a stored file
	GetFullPath(filename string) string
}

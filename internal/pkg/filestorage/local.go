package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// imageTypes are the content types accepted after sniffing the upload.
var imageTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp"}

// LocalStorage handles saving files to the local filesystem.
// Rows persist only the generated filename; the directory is served at /uploads.
type LocalStorage struct {
	basePath string
	maxBytes int64
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
// Uploads larger than maxBytes are rejected; zero means no limit.
func NewLocalStorage(basePath string, maxBytes int64) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath, maxBytes: maxBytes}, nil
}

// SaveFile saves an uploaded image under a uuid filename and returns the filename.
// The stored extension follows the sniffed content, not the client's filename.
// A nil header means nothing was uploaded and yields an empty name.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !imageExtensions[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
	}
	if ls.maxBytes > 0 && fileHeader.Size > ls.maxBytes {
		return "", fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, fileHeader.Size, ls.maxBytes)
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if !mimetype.EqualsAny(mtype.String(), imageTypes...) {
		logger.Warn().Str("filename", fileHeader.Filename).Str("detected", mtype.String()).Msg("Rejected upload with non-image content")
		return "", fmt.Errorf("%w: content is %s", ErrUnsupportedFileType, mtype.String())
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind uploaded file: %w", err)
	}

	uniqueFilename := uuid.New().String() + mtype.Extension()
	dstPath := filepath.Join(ls.basePath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", uniqueFilename).Msg("File saved successfully")
	return uniqueFilename, nil
}

// DeleteFile removes a stored file by name.
// Returns nil if deletion is successful or if the file doesn't exist.
func (ls *LocalStorage) DeleteFile(filename string) error {
	if filename == "" {
		return nil
	}

	physicalPath := ls.GetFullPath(filename)
	if physicalPath == "" {
		return fmt.Errorf("invalid file name: %s", filename)
	}

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

// GetFullPath returns the filesystem path for a stored filename. Any
// directory part is stripped so callers cannot escape the storage root.
func (ls *LocalStorage) GetFullPath(filename string) string {
	base := filepath.Base(filename)
	if base == "" || base == "." || base == "/" || base == ".." {
		return ""
	}
	return filepath.Join(ls.basePath, base)
}

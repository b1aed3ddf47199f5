package services

import (
	"errors"
	"mime/multipart"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/filestorage"
)

// imageKeeper wraps a FileStorage with the save/cleanup steps every
// image-bearing write performs.
type imageKeeper struct {
	storage filestorage.FileStorage
	logger  zerolog.Logger
}

// save stores the upload and returns its filename, or nil when nothing was uploaded
func (k imageKeeper) save(fileHeader *multipart.FileHeader) (*string, error) {
	if fileHeader == nil {
		return nil, nil
	}

	name, err := k.storage.SaveFile(fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, filestorage.ErrUnsupportedFileType):
			return nil, apperrors.NewValidationError("image must be a png, jpg, gif or webp file")
		case errors.Is(err, filestorage.ErrFileTooLarge):
			return nil, apperrors.NewCustomError(apperrors.ErrPayloadTooLarge, "image is too large")
		}
		return nil, apperrors.NewStorageError(err)
	}
	return &name, nil
}

// discard removes a stored image. Failures are logged, not returned, since
// the row change they follow has already been committed or rolled back.
func (k imageKeeper) discard(name *string) {
	if name == nil || *name == "" {
		return
	}
	if err := k.storage.DeleteFile(*name); err != nil {
		k.logger.Warn().Err(err).Str("image", *name).Msg("Failed to remove image file")
	}
}

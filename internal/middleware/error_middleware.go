package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// GenericErrorMessage is the only text a client sees for a server-side failure.
const GenericErrorMessage = "Something went wrong"

// StatusFor maps an error onto its HTTP status code
func StatusFor(err error) int {
	switch {
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrInvalidRole,
		apperrors.ErrMissingCredentials):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized
	case apperrors.Is(err, apperrors.ErrUnauthorizedRole, apperrors.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// HandleAPIError writes err as a failed envelope. Server-side failures are
// logged with their cause and answered with the generic message.
func HandleAPIError(c *gin.Context, err error) {
	status := StatusFor(err)

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("route", c.FullPath()).
			Msg("Request failed")
		c.AbortWithStatusJSON(status, dto.NewErrorResponse(GenericErrorMessage))
		return
	}

	message := apperrors.ClientMessage(err)
	if message == "" {
		message = err.Error()
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message))
}

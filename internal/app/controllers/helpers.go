package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/helpers"
)

// ImageField is the multipart field carrying an uploaded image
const ImageField = "image"

// parseID reads a positive integer path parameter. On failure it writes a 400
// and returns false.
func parseID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid "+name))
		return 0, false
	}
	return id, true
}

// principal returns the caller stored by the authorization middleware
func principal(ctx *gin.Context) (models.Principal, bool) {
	p, ok := middleware.PrincipalFrom(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrMissingCredentials, "authentication required"))
		return models.Principal{}, false
	}
	return p, true
}

// optionalImage returns the uploaded image, or nil when the request has none
func optionalImage(ctx *gin.Context) (*multipart.FileHeader, error) {
	fh, err := ctx.FormFile(ImageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, apperrors.NewValidationError("invalid image upload")
	}
	return fh, nil
}

// bind decodes the request into obj and writes a 400 on failure
func bind(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBind(obj); err != nil {
		middleware.HandleAPIError(ctx, middleware.BindingError(err))
		return false
	}
	return true
}

func bindJSON(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		middleware.HandleAPIError(ctx, middleware.BindingError(err))
		return false
	}
	return true
}

// listResponse answers with a page envelope when paging was requested and a
// plain list otherwise.
func listResponse(ctx *gin.Context, items interface{}, total int64, page, size int, paged bool) {
	if !paged {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items, ""))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PaginatedData{
		Items:      items,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, ""))
}

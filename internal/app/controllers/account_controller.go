package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
)

// AccountController serves the caller's profile and the admin account screens
type AccountController struct {
	accountService *services.AccountService
}

// NewAccountController creates a new AccountController
func NewAccountController(accountService *services.AccountService) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Profile returns the caller's own account
// @Summary Current account
// @Tags accounts
// @Produce json
// @Security RoleToken
// @Param role header string true "student, teacher or admin"
// @Success 200 {object} dto.APIResponse{data=models.Account}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Router /profile [get]
func (c *AccountController) Profile(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	account, err := c.accountService.Profile(ctx, p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(account, ""))
}

// List returns every account of one role
// @Summary List accounts
// @Tags admin
// @Produce json
// @Security RoleToken
// @Success 200 {object} dto.APIResponse{data=[]models.Account}
// @Router /supperAdmin/get-students [get]
// @Router /admin/get-students [get]
// @Router /supperAdmin/get-teachers [get]
// @Router /admin/get-teachers [get]
// @Router /supperAdmin/get-admins [get]
// @Router /admin/get-admins [get]
func (c *AccountController) List(role models.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		accounts, err := c.accountService.List(ctx, role)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(accounts, ""))
	}
}

// Create adds a teacher or an admin. Teachers may carry an image.
// @Summary Add account
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security RoleToken
// @Param name formData string true "Name"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param department_id formData int false "Department"
// @Param image formData file false "Profile image"
// @Success 201 {object} dto.APIResponse{data=models.Account}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse "Email already exists"
// @Router /supperAdmin/add-teacher [post]
// @Router /admin/add-teacher [post]
// @Router /supperAdmin/add-admin [post]
// @Router /admin/add-admin [post]
func (c *AccountController) Create(role models.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req dto.CreateAccountRequest
		if !bind(ctx, &req) {
			return
		}
		image, err := optionalImage(ctx)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		account, err := c.accountService.Create(ctx, role, req, image)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(account, role.String()+" added successfully"))
	}
}

// Update edits an account; only supplied fields change
// @Summary Edit account
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security RoleToken
// @Param id path int true "Account ID"
// @Success 200 {object} dto.APIResponse{data=models.Account}
// @Failure 404 {object} dto.APIResponse
// @Router /supperAdmin/edit-teacher/{id} [put]
// @Router /admin/edit-teacher/{id} [put]
func (c *AccountController) Update(role models.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := parseID(ctx, "id")
		if !ok {
			return
		}
		var req dto.UpdateAccountRequest
		if !bind(ctx, &req) {
			return
		}
		image, err := optionalImage(ctx)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}

		account, err := c.accountService.Update(ctx, role, id, req, image)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(account, role.String()+" updated successfully"))
	}
}

// Delete removes an account. The last admin cannot be removed.
// @Summary Delete account
// @Tags admin
// @Produce json
// @Security RoleToken
// @Param id path int true "Account ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse "Last admin"
// @Router /supperAdmin/delete-student/{id} [delete]
// @Router /admin/delete-student/{id} [delete]
// @Router /supperAdmin/delete-teacher/{id} [delete]
// @Router /admin/delete-teacher/{id} [delete]
// @Router /supperAdmin/delete-admin/{id} [delete]
// @Router /admin/delete-admin/{id} [delete]
func (c *AccountController) Delete(role models.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := parseID(ctx, "id")
		if !ok {
			return
		}
		if err := c.accountService.Delete(ctx, role, id); err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, role.String()+" deleted successfully"))
	}
}

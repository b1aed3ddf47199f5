package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// AuthController handles login and sign-up
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login authenticates against the table of the role named in the body
// @Summary Log in
// @Description Verifies email and password for the given role and returns a token signed with that role's key. A wrong email or password answers 200 with loginStatus false.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.LoginResponse "Missing field or unknown role"
// @Failure 500 {object} dto.LoginResponse
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	c.login(ctx, "")
}

// LoginAs serves the per-role login paths, where the role comes from the path
// @Summary Log in with a fixed role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials; role may be omitted"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.LoginResponse
// @Router /student/login [post]
// @Router /teacher/login [post]
// @Router /supperAdmin/login [post]
// @Router /admin/login [post]
func (c *AuthController) LoginAs(role models.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		c.login(ctx, role)
	}
}

func (c *AuthController) login(ctx *gin.Context, forced models.Role) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.LoginResponse{Message: "Invalid request format"})
		return
	}
	if forced != "" {
		req.Role = forced.String()
	}

	resp, err := c.authService.Login(ctx, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			ctx.JSON(http.StatusOK, dto.LoginResponse{Message: services.InvalidLoginMessage})
			return
		}
		status := middleware.StatusFor(err)
		message := apperrors.ClientMessage(err)
		if status == http.StatusInternalServerError || message == "" {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(status, dto.LoginResponse{Message: message})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// SignUp creates a student account
// @Summary Student sign-up
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "New student"
// @Success 201 {object} dto.APIResponse{data=models.Account}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse "Email already exists"
// @Router /student-sign-up [post]
func (c *AuthController) SignUp(ctx *gin.Context) {
	var req dto.SignUpRequest
	if !bind(ctx, &req) {
		return
	}

	account, err := c.authService.SignUp(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(account, "Student registered successfully"))
}

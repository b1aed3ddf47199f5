package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
)

// CategoryController handles category-related operations
type CategoryController struct {
	categoryService *services.CategoryService
}

// NewCategoryController creates a new CategoryController
func NewCategoryController(categoryService *services.CategoryService) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

// GetAllCategories retrieves all categories
// @Summary Get all categories
// @Tags categories
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Category}
// @Failure 500 {object} dto.APIResponse
// @Router /student/get-categories [get]
// @Router /supperAdmin/get-categories [get]
// @Router /admin/get-categories [get]
func (c *CategoryController) GetAllCategories(ctx *gin.Context) {
	categories, err := c.categoryService.GetAllCategories(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(categories, ""))
}

// CreateCategory handles category creation
// @Summary Create a new category
// @Tags categories
// @Accept json
// @Produce json
// @Security RoleToken
// @Param request body dto.CategoryRequest true "Category information"
// @Success 201 {object} dto.APIResponse{data=models.Category}
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 409 {object} dto.APIResponse "Category already exists"
// @Router /supperAdmin/add-category [post]
// @Router /admin/add-category [post]
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var req dto.CategoryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	category, err := c.categoryService.CreateCategory(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(category, "Category added successfully"))
}

// UpdateCategory replaces the name and description of a category
// @Summary Update category
// @Tags categories
// @Accept json
// @Produce json
// @Security RoleToken
// @Param id path int true "Category ID"
// @Param request body dto.CategoryRequest true "Category information"
// @Success 200 {object} dto.APIResponse{data=models.Category}
// @Failure 404 {object} dto.APIResponse "Category not found"
// @Router /supperAdmin/edit-category/{id} [put]
// @Router /admin/edit-category/{id} [put]
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	category, err := c.categoryService.UpdateCategory(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(category, "Category updated successfully"))
}

// DeleteCategory removes a category
// @Summary Delete category
// @Tags categories
// @Produce json
// @Security RoleToken
// @Param id path int true "Category ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Category not found"
// @Failure 409 {object} dto.APIResponse "Category still referenced"
// @Router /supperAdmin/delete-category/{id} [delete]
// @Router /admin/delete-category/{id} [delete]
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.categoryService.DeleteCategory(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Category deleted successfully"))
}

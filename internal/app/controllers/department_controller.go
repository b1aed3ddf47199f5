package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
)

// DepartmentController handles department-related operations
type DepartmentController struct {
	departmentService *services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService *services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// GetAllDepartments retrieves all departments
// @Summary Get all departments
// @Tags departments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Department}
// @Failure 500 {object} dto.APIResponse
// @Router /student/get-departments [get]
// @Router /supperAdmin/get-departments [get]
// @Router /admin/get-departments [get]
func (c *DepartmentController) GetAllDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.GetAllDepartments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(departments, ""))
}

// CreateDepartment handles department creation
// @Summary Create a new department
// @Tags departments
// @Accept json
// @Produce json
// @Security RoleToken
// @Param request body dto.DepartmentRequest true "Department information"
// @Success 201 {object} dto.APIResponse{data=models.Department}
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 409 {object} dto.APIResponse "Department already exists"
// @Router /supperAdmin/add-department [post]
// @Router /admin/add-department [post]
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.DepartmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	department, err := c.departmentService.CreateDepartment(ctx, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(department, "Department added successfully"))
}

// UpdateDepartment renames a department
// @Summary Update department
// @Tags departments
// @Accept json
// @Produce json
// @Security RoleToken
// @Param id path int true "Department ID"
// @Param request body dto.DepartmentRequest true "Department information"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Router /supperAdmin/edit-department/{id} [put]
// @Router /admin/edit-department/{id} [put]
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.DepartmentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	department, err := c.departmentService.UpdateDepartment(ctx, id, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(department, "Department updated successfully"))
}

// DeleteDepartment removes a department
// @Summary Delete department
// @Tags departments
// @Produce json
// @Security RoleToken
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Department not found"
// @Failure 409 {object} dto.APIResponse "Department still referenced"
// @Router /supperAdmin/delete-department/{id} [delete]
// @Router /admin/delete-department/{id} [delete]
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.departmentService.DeleteDepartment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Department deleted successfully"))
}

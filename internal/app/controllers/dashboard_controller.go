package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DashboardController serves the admin dashboard
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// Counts returns the number of rows of each main table
// @Summary Dashboard counts
// @Tags admin
// @Produce json
// @Security RoleToken
// @Success 200 {object} dto.APIResponse{data=models.DashboardCounts}
// @Router /supperAdmin/dashboard-counts [get]
// @Router /admin/dashboard-counts [get]
func (c *DashboardController) Counts(ctx *gin.Context) {
	counts, err := c.dashboardService.Counts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(counts, ""))
}

// Export downloads the accounts of one role as an XLSX workbook
// @Summary Export accounts
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security RoleToken
// @Param role path string true "student, teacher or admin"
// @Success 200 {file} file
// @Failure 400 {object} dto.APIResponse "Unknown role"
// @Router /supperAdmin/export/{role} [get]
// @Router /admin/export/{role} [get]
func (c *DashboardController) Export(ctx *gin.Context) {
	role, err := models.ParseRole(ctx.Param("role"))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrInvalidRole, err.Error()))
		return
	}

	data, err := c.dashboardService.ExportAccounts(ctx, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filename := fmt.Sprintf("%ss-%s.xlsx", role, time.Now().UTC().Format("20060102"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, xlsxContentType, data)
}

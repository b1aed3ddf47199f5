package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/helpers"
)

// CourseController handles course operations
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetAllCourses lists every course, newest first
// @Summary List courses
// @Description Without page and size every course is returned; with either of them a page envelope is returned.
// @Tags courses
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Router /student/get-all-course [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	page, size, paged := helpers.ParsePaginationParams(ctx)
	filter := dto.CourseFilter{}
	if paged {
		filter.Page, filter.Size = page, size
	}

	courses, total, err := c.courseService.ListCourses(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	listResponse(ctx, courses, total, page, size, paged)
}

// GetOwnCourses lists the caller's courses; admins see all of them
// @Summary List own courses
// @Tags courses
// @Produce json
// @Security RoleToken
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Router /teacher/get-all-course [get]
func (c *CourseController) GetOwnCourses(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	page, size, paged := helpers.ParsePaginationParams(ctx)
	if !paged {
		page, size = 0, 0
	}

	courses, total, err := c.courseService.ListForPrincipal(ctx, p, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	listResponse(ctx, courses, total, page, size, paged)
}

// GetCourse returns one course with its links
// @Summary Get course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /student/get-cours/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course, ""))
}

// GetCoursesByYear lists the courses of one year
// @Summary Courses by year
// @Tags courses
// @Produce json
// @Param year path string true "Year"
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Router /student/get-course-by-year/{year} [get]
func (c *CourseController) GetCoursesByYear(ctx *gin.Context) {
	courses, err := c.courseService.ListByYear(ctx, ctx.Param("year"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses, ""))
}

// CreateCourse publishes a course with its links and image
// @Summary Add course
// @Tags courses
// @Accept multipart/form-data
// @Produce json
// @Security RoleToken
// @Param title formData string true "Title"
// @Param tag formData string false "Tag"
// @Param category_id formData int false "Category"
// @Param department_id formData int false "Department"
// @Param benefit_one formData string false "First benefit"
// @Param benefit_two formData string false "Second benefit"
// @Param prerequisite_one formData string false "First prerequisite"
// @Param prerequisite_two formData string false "Second prerequisite"
// @Param description formData string false "Description"
// @Param year formData string false "Year"
// @Param links formData string false "JSON array of {link_name, link_url}"
// @Param image formData file false "Cover image"
// @Success 201 {object} dto.APIResponse{data=models.Course}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Referenced category or department missing"
// @Router /teacher/add-cours [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var req dto.CreateCourseRequest
	if !bind(ctx, &req) {
		return
	}
	image, err := optionalImage(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course, err := c.courseService.CreateCourse(ctx, p, req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course, "Course added successfully"))
}

// UpdateCourse edits a course. A links field replaces every existing link.
// @Summary Edit course
// @Tags courses
// @Accept multipart/form-data
// @Produce json
// @Security RoleToken
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 403 {object} dto.APIResponse "Not the course owner"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /teacher/edit-course/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateCourseRequest
	if !bind(ctx, &req) {
		return
	}
	image, err := optionalImage(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, p, id, req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course, "Course updated successfully"))
}

// DeleteCourse removes a course together with its links
// @Summary Delete course
// @Tags courses
// @Produce json
// @Security RoleToken
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse "Not the course owner"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /teacher/delete-course/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx, p, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Course deleted successfully"))
}

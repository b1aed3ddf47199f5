package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
)

// ExamController handles exam operations
type ExamController struct {
	examService *services.ExamService
}

// NewExamController creates a new ExamController
func NewExamController(examService *services.ExamService) *ExamController {
	return &ExamController{
		examService: examService,
	}
}

// GetAllExams lists every exam
// @Summary List exams
// @Tags exams
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Exam}
// @Router /student/get-exams [get]
// @Router /teacher/get-exams [get]
func (c *ExamController) GetAllExams(ctx *gin.Context) {
	exams, err := c.examService.GetAllExams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(exams, ""))
}

// CreateExam posts an exam
// @Summary Post exam
// @Tags exams
// @Accept multipart/form-data
// @Produce json
// @Security RoleToken
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param category_id formData int false "Category"
// @Param image formData file false "Exam sheet image"
// @Success 201 {object} dto.APIResponse{data=models.Exam}
// @Failure 400 {object} dto.APIResponse
// @Router /teacher/post-exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.CreateExamRequest
	if !bind(ctx, &req) {
		return
	}
	image, err := optionalImage(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	exam, err := c.examService.CreateExam(ctx, req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(exam, "Exam posted successfully"))
}

// UpdateExam edits an exam
// @Summary Edit exam
// @Tags exams
// @Accept multipart/form-data
// @Produce json
// @Security RoleToken
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.APIResponse{data=models.Exam}
// @Failure 404 {object} dto.APIResponse "Exam not found"
// @Router /teacher/edit-exam/{id} [put]
func (c *ExamController) UpdateExam(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateExamRequest
	if !bind(ctx, &req) {
		return
	}
	image, err := optionalImage(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	exam, err := c.examService.UpdateExam(ctx, id, req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(exam, "Exam updated successfully"))
}

// DeleteExam removes an exam
// @Summary Delete exam
// @Tags exams
// @Produce json
// @Security RoleToken
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Exam not found"
// @Router /teacher/delete-exam/{id} [delete]
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.examService.DeleteExam(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Exam deleted successfully"))
}

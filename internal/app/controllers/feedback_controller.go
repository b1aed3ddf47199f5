package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
)

// FeedbackController handles ratings, comments and course Q&A
type FeedbackController struct {
	feedbackService *services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService *services.FeedbackService) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
	}
}

// RateCourse records the student's rating of a course, replacing an earlier one
// @Summary Rate course
// @Tags feedback
// @Accept json
// @Produce json
// @Security RoleToken
// @Param request body dto.RatingRequest true "Rating between 1 and 5"
// @Success 200 {object} dto.APIResponse{data=models.RatingSummary}
// @Failure 400 {object} dto.APIResponse "Rating out of range"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /student/rateing [post]
func (c *FeedbackController) RateCourse(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var req dto.RatingRequest
	if !bindJSON(ctx, &req) {
		return
	}

	summary, err := c.feedbackService.RateCourse(ctx, p.ID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summary, "Rating saved successfully"))
}

// GetRating returns the average rating of a course
// @Summary Course rating
// @Tags feedback
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.RatingSummary}
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /student/rating/{id} [get]
func (c *FeedbackController) GetRating(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	summary, err := c.feedbackService.RatingSummary(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summary, ""))
}

// GiveComment adds a comment to a course
// @Summary Comment on course
// @Tags feedback
// @Accept json
// @Produce json
// @Security RoleToken
// @Param request body dto.CommentRequest true "Comment"
// @Success 201 {object} dto.APIResponse{data=models.Comment}
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /student/give-comment [post]
func (c *FeedbackController) GiveComment(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var req dto.CommentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	comment, err := c.feedbackService.AddComment(ctx, p.ID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(comment, "Comment added successfully"))
}

// GetComments lists the comments of a course
// @Summary Course comments
// @Tags feedback
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Comment}
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /student/get-comments/{id} [get]
func (c *FeedbackController) GetComments(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	comments, err := c.feedbackService.ListComments(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(comments, ""))
}

// DeleteComment removes a comment
// @Summary Delete comment
// @Tags feedback
// @Produce json
// @Security RoleToken
// @Param id path int true "Comment ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Comment not found"
// @Router /teacher/delete-comment/{id} [delete]
func (c *FeedbackController) DeleteComment(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.feedbackService.DeleteComment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Comment deleted successfully"))
}

// AskQuestion posts a question about a course
// @Summary Ask question
// @Tags feedback
// @Accept json
// @Produce json
// @Security RoleToken
// @Param request body dto.QuestionRequest true "Question"
// @Success 201 {object} dto.APIResponse{data=models.Question}
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /student/ask-quation [post]
func (c *FeedbackController) AskQuestion(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var req dto.QuestionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	question, err := c.feedbackService.AskQuestion(ctx, p.ID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(question, "Question sent successfully"))
}

// GetQA lists the questions of a course with their answers
// @Summary Course Q&A
// @Tags feedback
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Question}
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /student/get-QA/{id} [get]
// @Router /teacher/get-QA/{id} [get]
func (c *FeedbackController) GetQA(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	questions, err := c.feedbackService.ListQuestions(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(questions, ""))
}

// AnswerQuestion answers a student's question as the calling teacher or admin
// @Summary Answer question
// @Tags feedback
// @Accept json
// @Produce json
// @Security RoleToken
// @Param request body dto.AnswerRequest true "Answer"
// @Success 201 {object} dto.APIResponse{data=models.Answer}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Question not found"
// @Router /teacher/answer-quation [post]
func (c *FeedbackController) AnswerQuestion(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var req dto.AnswerRequest
	if !bindJSON(ctx, &req) {
		return
	}

	answer, err := c.feedbackService.AnswerQuestion(ctx, p, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(answer, "Answer sent successfully"))
}

// QuestionCount reports total and unanswered questions on the caller's courses
// @Summary Question counts
// @Tags feedback
// @Produce json
// @Security RoleToken
// @Success 200 {object} dto.APIResponse{data=models.QuestionCount}
// @Router /teacher/get-quations-count [get]
func (c *FeedbackController) QuestionCount(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	count, err := c.feedbackService.QuestionCount(ctx, p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(count, ""))
}

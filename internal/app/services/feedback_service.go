package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// Rating bounds, mirrored by the CHECK constraint on the ratings table
const (
	MinRating = 1
	MaxRating = 5
)

// FeedbackService handles comments, questions, answers and ratings
type FeedbackService struct {
	courses   CourseChecker
	comments  CommentStore
	questions QuestionStore
	ratings   RatingStore
	logger    zerolog.Logger
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(courses CourseChecker, comments CommentStore, questions QuestionStore, ratings RatingStore, logger zerolog.Logger) *FeedbackService {
	return &FeedbackService{
		courses:   courses,
		comments:  comments,
		questions: questions,
		ratings:   ratings,
		logger:    logger,
	}
}

// AddComment stores a student's comment on a course
func (s *FeedbackService) AddComment(ctx context.Context, studentID int64, req dto.CommentRequest) (*models.Comment, error) {
	text := strings.TrimSpace(req.Comment)
	if text == "" {
		return nil, apperrors.NewValidationError("comment cannot be empty")
	}

	comment := &models.Comment{CourseID: req.CourseID, StudentID: studentID, Comment: text}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns the comments of a course
func (s *FeedbackService) ListComments(ctx context.Context, courseID int64) ([]*models.Comment, error) {
	if err := s.requireCourse(ctx, courseID); err != nil {
		return nil, err
	}
	return s.comments.ListByCourse(ctx, courseID)
}

// DeleteComment removes a comment
func (s *FeedbackService) DeleteComment(ctx context.Context, id int64) error {
	if err := s.comments.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("commentID", id).Msg("Comment deleted")
	return nil
}

// AskQuestion stores a student's question about a course
func (s *FeedbackService) AskQuestion(ctx context.Context, studentID int64, req dto.QuestionRequest) (*models.Question, error) {
	text := strings.TrimSpace(req.Question)
	if text == "" {
		return nil, apperrors.NewValidationError("question cannot be empty")
	}

	question := &models.Question{CourseID: req.CourseID, StudentID: studentID, Question: text, Answers: []models.Answer{}}
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

// ListQuestions returns the questions of a course with their answers
func (s *FeedbackService) ListQuestions(ctx context.Context, courseID int64) ([]*models.Question, error) {
	if err := s.requireCourse(ctx, courseID); err != nil {
		return nil, err
	}
	return s.questions.ListByCourse(ctx, courseID)
}

// AnswerQuestion records the principal's answer to a question
func (s *FeedbackService) AnswerQuestion(ctx context.Context, principal models.Principal, req dto.AnswerRequest) (*models.Answer, error) {
	text := strings.TrimSpace(req.Answer)
	if text == "" {
		return nil, apperrors.NewValidationError("answer cannot be empty")
	}

	answer := &models.Answer{
		QuestionID:    req.QuestionID,
		TeacherID:     principal.ID,
		ResponderRole: principal.Role,
		Answer:        text,
	}
	if err := s.questions.CreateAnswer(ctx, answer); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("questionID", answer.QuestionID).Str("role", principal.Role.String()).Int64("principalID", principal.ID).Msg("Question answered")
	return answer, nil
}

// QuestionCount counts questions on the teacher's courses, or on every course for admins
func (s *FeedbackService) QuestionCount(ctx context.Context, principal models.Principal) (*models.QuestionCount, error) {
	if principal.IsAdmin() {
		return s.questions.CountForTeacher(ctx, nil)
	}
	return s.questions.CountForTeacher(ctx, &principal.ID)
}

// RateCourse stores the student's rating, replacing an earlier one
func (s *FeedbackService) RateCourse(ctx context.Context, studentID int64, req dto.RatingRequest) (*models.RatingSummary, error) {
	if req.Rating < MinRating || req.Rating > MaxRating {
		return nil, apperrors.ErrRatingOutOfRange
	}

	rating := &models.Rating{CourseID: req.CourseID, StudentID: studentID, Rating: req.Rating}
	if err := s.ratings.Upsert(ctx, rating); err != nil {
		return nil, err
	}
	return s.ratings.Summary(ctx, req.CourseID)
}

// RatingSummary returns the average rating of a course
func (s *FeedbackService) RatingSummary(ctx context.Context, courseID int64) (*models.RatingSummary, error) {
	if err := s.requireCourse(ctx, courseID); err != nil {
		return nil, err
	}
	return s.ratings.Summary(ctx, courseID)
}

func (s *FeedbackService) requireCourse(ctx context.Context, courseID int64) error {
	exists, err := s.courses.Exists(ctx, courseID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

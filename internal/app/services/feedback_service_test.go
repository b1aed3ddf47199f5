package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

func newFeedback() (*FeedbackService, *fakeComments, *fakeQuestions, *fakeRatings) {
	comments := &fakeComments{}
	questions := &fakeQuestions{knownQuestID: 10}
	ratings := &fakeRatings{}
	courses := newFakeCourses()
	courses.rows[4] = &models.Course{ID: 4, Title: "Go"}
	return NewFeedbackService(courses, comments, questions, ratings, zerolog.Nop()), comments, questions, ratings
}

func TestRateCourseBounds(t *testing.T) {
	svc, _, _, _ := newFeedback()
	ctx := context.Background()

	for _, value := range []int{MinRating, MaxRating} {
		_, err := svc.RateCourse(ctx, 9, dto.RatingRequest{CourseID: 4, Rating: value})
		assert.NoError(t, err, "rating %d", value)
	}

	for _, value := range []int{0, 6, -1} {
		_, err := svc.RateCourse(ctx, 9, dto.RatingRequest{CourseID: 4, Rating: value})
		assert.ErrorIs(t, err, apperrors.ErrRatingOutOfRange, "rating %d", value)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "rating %d", value)
	}
}

func TestRerateReplacesEarlierRating(t *testing.T) {
	svc, _, _, _ := newFeedback()
	ctx := context.Background()

	_, err := svc.RateCourse(ctx, 9, dto.RatingRequest{CourseID: 4, Rating: 1})
	require.NoError(t, err)
	summary, err := svc.RateCourse(ctx, 9, dto.RatingRequest{CourseID: 4, Rating: 5})
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.Count)
	assert.Equal(t, 5.0, summary.Average)
}

func TestAnswerQuestionRecordsPrincipal(t *testing.T) {
	svc, _, questions, _ := newFeedback()
	ctx := context.Background()

	answer, err := svc.AnswerQuestion(ctx, teacherPrincipal, dto.AnswerRequest{QuestionID: 10, Answer: " use a mutex "})
	require.NoError(t, err)
	assert.Equal(t, teacherPrincipal.ID, answer.TeacherID)
	assert.Equal(t, models.RoleTeacher, answer.ResponderRole)
	assert.Equal(t, "use a mutex", answer.Answer)
	assert.Len(t, questions.answers, 1)

	_, err = svc.AnswerQuestion(ctx, adminPrincipal, dto.AnswerRequest{QuestionID: 99, Answer: "?"})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = svc.AnswerQuestion(ctx, teacherPrincipal, dto.AnswerRequest{QuestionID: 10, Answer: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestQuestionCountScope(t *testing.T) {
	svc, _, questions, _ := newFeedback()
	ctx := context.Background()

	count, err := svc.QuestionCount(ctx, teacherPrincipal)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count.Total)
	require.NotNil(t, questions.countedFor)
	assert.Equal(t, teacherPrincipal.ID, *questions.countedFor)

	_, err = svc.QuestionCount(ctx, adminPrincipal)
	require.NoError(t, err)
	assert.Nil(t, questions.countedFor)
}

func TestCommentsAndQuestionsRequireText(t *testing.T) {
	svc, comments, _, _ := newFeedback()
	ctx := context.Background()

	_, err := svc.AddComment(ctx, 9, dto.CommentRequest{CourseID: 4, Comment: " "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	comment, err := svc.AddComment(ctx, 9, dto.CommentRequest{CourseID: 4, Comment: "great"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), comment.StudentID)

	_, err = svc.AskQuestion(ctx, 9, dto.QuestionRequest{CourseID: 4, Question: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	question, err := svc.AskQuestion(ctx, 9, dto.QuestionRequest{CourseID: 4, Question: "why?"})
	require.NoError(t, err)
	assert.NotNil(t, question.Answers)

	require.NoError(t, svc.DeleteComment(ctx, 1))
	assert.Equal(t, []int64{1}, comments.deleted)
}

func TestCourseReadsRequireCourse(t *testing.T) {
	svc, _, _, _ := newFeedback()
	ctx := context.Background()

	_, err := svc.RatingSummary(ctx, 404)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	_, err = svc.ListComments(ctx, 404)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	_, err = svc.ListQuestions(ctx, 404)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	summary, err := svc.RatingSummary(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.Count)
	comments, err := svc.ListComments(ctx, 4)
	require.NoError(t, err)
	assert.Empty(t, comments)
	_, err = svc.ListQuestions(ctx, 4)
	assert.NoError(t, err)
}

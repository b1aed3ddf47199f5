package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/db"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/dberrors"
)

// QuestionRepository handles course questions and their answers
type QuestionRepository struct {
	db *db.MySQLDB
	sb squirrel.StatementBuilderType
}

// NewQuestionRepository creates a new QuestionRepository
func NewQuestionRepository(db *db.MySQLDB) *QuestionRepository {
	return &QuestionRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func classifyQuestion(err error) error {
	return dberrors.Classify(err, apperrors.ErrQuestionNotFound, apperrors.ErrConflict)
}

// Create inserts a question and sets its ID
func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	result, err := r.db.DB.ExecContext(ctx,
		`INSERT INTO questions (course_id, student_id, question) VALUES (?, ?, ?)`,
		question.CourseID, question.StudentID, question.Question,
	)
	if err != nil {
		return classifyQuestion(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	question.ID = id
	return nil
}

// CreateAnswer inserts an answer. An unknown question id is reported as
// ErrQuestionNotFound.
func (r *QuestionRepository) CreateAnswer(ctx context.Context, answer *models.Answer) error {
	result, err := r.db.DB.ExecContext(ctx,
		`INSERT INTO answers (question_id, teacher_id, responder_role, answer) VALUES (?, ?, ?, ?)`,
		answer.QuestionID, answer.TeacherID, string(answer.ResponderRole), answer.Answer,
	)
	if err != nil {
		if dberrors.IsMissingReferenceError(err) {
			return apperrors.ErrQuestionNotFound
		}
		return classifyQuestion(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	answer.ID = id
	return nil
}

// ListByCourse returns the questions of a course, oldest first, each with its answers
func (r *QuestionRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Question, error) {
	query := `
		SELECT q.id, q.course_id, q.student_id, s.name, q.question, q.created_at
		FROM questions q
		JOIN students s ON s.id = q.student_id
		WHERE q.course_id = ?
		ORDER BY q.created_at, q.id
	`

	rows, err := r.db.DB.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	defer rows.Close()

	questions := make([]*models.Question, 0)
	byID := make(map[int64]*models.Question)
	ids := make([]int64, 0)
	for rows.Next() {
		var question models.Question
		if err := rows.Scan(
			&question.ID,
			&question.CourseID,
			&question.StudentID,
			&question.StudentName,
			&question.Question,
			&question.CreatedAt,
		); err != nil {
			return nil, apperrors.NewStorageError(err)
		}
		question.Answers = []models.Answer{}
		questions = append(questions, &question)
		byID[question.ID] = &question
		ids = append(ids, question.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	if len(ids) == 0 {
		return questions, nil
	}
	if err := r.attachAnswers(ctx, ids, byID); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuestionRepository) attachAnswers(ctx context.Context, ids []int64, byID map[int64]*models.Question) error {
	query, args, err := r.sb.Select("id", "question_id", "teacher_id", "responder_role", "answer", "created_at").
		From("answers").
		Where(squirrel.Eq{"question_id": ids}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build answer query: %w", err)
	}

	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			answer models.Answer
			role   string
		)
		if err := rows.Scan(
			&answer.ID,
			&answer.QuestionID,
			&answer.TeacherID,
			&role,
			&answer.Answer,
			&answer.CreatedAt,
		); err != nil {
			return apperrors.NewStorageError(err)
		}
		answer.ResponderRole = models.Role(role)
		if question, ok := byID[answer.QuestionID]; ok {
			question.Answers = append(question.Answers, answer)
		}
	}
	if err := rows.Err(); err != nil {
		return apperrors.NewStorageError(err)
	}
	return nil
}

// CountForTeacher counts questions on the teacher's courses and how many of
// them have no answer yet. A nil teacherID counts across all courses.
func (r *QuestionRepository) CountForTeacher(ctx context.Context, teacherID *int64) (*models.QuestionCount, error) {
	builder := r.sb.Select(
		"COUNT(*)",
		"COALESCE(SUM(CASE WHEN NOT EXISTS (SELECT 1 FROM answers a WHERE a.question_id = q.id) THEN 1 ELSE 0 END), 0)",
	).From("questions q")
	if teacherID != nil {
		builder = builder.Join("courses c ON c.id = q.course_id").Where(squirrel.Eq{"c.teacher_id": *teacherID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build question count query: %w", err)
	}

	var count models.QuestionCount
	if err := r.db.DB.QueryRowContext(ctx, query, args...).Scan(&count.Total, &count.Unanswered); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return &count, nil
}

// Count returns the number of questions
func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db.DB, "questions")
}

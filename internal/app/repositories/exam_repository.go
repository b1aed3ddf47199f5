package repositories

import (
	"context"
	"database/sql"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/db"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/dberrors"
	"github.com/yigit/coursehub/internal/pkg/helpers"
)

// ExamRepository handles database operations for exams
type ExamRepository struct {
	db *db.MySQLDB
}

// NewExamRepository creates a new ExamRepository
func NewExamRepository(db *db.MySQLDB) *ExamRepository {
	return &ExamRepository{db: db}
}

const examSelect = `
	SELECT e.id, e.title, e.description, e.image, e.category_id, cat.name, e.created_at
	FROM exams e
	LEFT JOIN categories cat ON cat.id = e.category_id
`

func classifyExam(err error) error {
	return dberrors.Classify(err, apperrors.ErrExamNotFound, apperrors.ErrConflict)
}

func scanExam(row rowScanner) (*models.Exam, error) {
	var (
		exam         models.Exam
		description  sql.NullString
		image        sql.NullString
		categoryID   sql.NullInt64
		categoryName sql.NullString
	)
	if err := row.Scan(
		&exam.ID,
		&exam.Title,
		&description,
		&image,
		&categoryID,
		&categoryName,
		&exam.CreatedAt,
	); err != nil {
		return nil, err
	}
	exam.Description = description.String
	exam.Image = helpers.StringPtr(image)
	exam.CategoryID = helpers.Int64Ptr(categoryID)
	exam.CategoryName = helpers.StringPtr(categoryName)
	return &exam, nil
}

// Create inserts an exam and sets its ID
func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) error {
	query := `
		INSERT INTO exams (title, description, image, category_id)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.DB.ExecContext(ctx, query,
		exam.Title,
		exam.Description,
		helpers.GetNullString(exam.Image),
		helpers.GetNullInt64(exam.CategoryID),
	)
	if err != nil {
		return classifyExam(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	exam.ID = id
	return nil
}

// GetByID retrieves an exam by ID
func (r *ExamRepository) GetByID(ctx context.Context, id int64) (*models.Exam, error) {
	exam, err := scanExam(r.db.DB.QueryRowContext(ctx, examSelect+` WHERE e.id = ?`, id))
	if err != nil {
		return nil, classifyExam(err)
	}
	return exam, nil
}

// GetAll retrieves every exam, newest first
func (r *ExamRepository) GetAll(ctx context.Context) ([]*models.Exam, error) {
	rows, err := r.db.DB.QueryContext(ctx, examSelect+` ORDER BY e.created_at DESC, e.id DESC`)
	if err != nil {
		return nil, classifyExam(err)
	}
	defer rows.Close()

	exams := make([]*models.Exam, 0)
	for rows.Next() {
		exam, err := scanExam(rows)
		if err != nil {
			return nil, apperrors.NewStorageError(err)
		}
		exams = append(exams, exam)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return exams, nil
}

// Update rewrites an exam row
func (r *ExamRepository) Update(ctx context.Context, exam *models.Exam) error {
	query := `
		UPDATE exams
		SET title = ?, description = ?, image = ?, category_id = ?
		WHERE id = ?
	`

	result, err := r.db.DB.ExecContext(ctx, query,
		exam.Title,
		exam.Description,
		helpers.GetNullString(exam.Image),
		helpers.GetNullInt64(exam.CategoryID),
		exam.ID,
	)
	if err != nil {
		return classifyExam(err)
	}
	return requireAffected(result, apperrors.ErrExamNotFound)
}

// Delete deletes an exam by ID
func (r *ExamRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM exams WHERE id = ?`, id)
	if err != nil {
		return classifyExam(err)
	}
	return requireAffected(result, apperrors.ErrExamNotFound)
}

// Count returns the number of exams
func (r *ExamRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db.DB, "exams")
}

package repositories

import (
	"context"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/db"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/dberrors"
)

// RatingRepository handles course ratings
type RatingRepository struct {
	db *db.MySQLDB
}

// NewRatingRepository creates a new RatingRepository
func NewRatingRepository(db *db.MySQLDB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Upsert stores the student's rating of a course, replacing an earlier one.
// The CHECK constraint on the table rejects values outside 1-5.
func (r *RatingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	query := `
		INSERT INTO ratings (course_id, student_id, rating)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE rating = VALUES(rating)
	`

	_, err := r.db.DB.ExecContext(ctx, query, rating.CourseID, rating.StudentID, rating.Rating)
	if err != nil {
		if dberrors.IsCheckViolation(err) {
			return apperrors.ErrRatingOutOfRange
		}
		return dberrors.Classify(err, apperrors.ErrCourseNotFound, apperrors.ErrConflict)
	}
	return nil
}

// Summary returns the average and count of a course's ratings
func (r *RatingRepository) Summary(ctx context.Context, courseID int64) (*models.RatingSummary, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM ratings
		WHERE course_id = ?
	`

	summary := models.RatingSummary{CourseID: courseID}
	if err := r.db.DB.QueryRowContext(ctx, query, courseID).Scan(&summary.Average, &summary.Count); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return &summary, nil
}

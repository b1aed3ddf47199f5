package repositories

import (
	"context"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/db"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/dberrors"
)

// CommentRepository handles course comments
type CommentRepository struct {
	db *db.MySQLDB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *db.MySQLDB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a comment. A missing course or student surfaces as not found.
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	result, err := r.db.DB.ExecContext(ctx,
		`INSERT INTO comments (course_id, student_id, comment) VALUES (?, ?, ?)`,
		comment.CourseID, comment.StudentID, comment.Comment,
	)
	if err != nil {
		return dberrors.Classify(err, apperrors.ErrCommentNotFound, apperrors.ErrConflict)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	comment.ID = id
	return nil
}

// ListByCourse returns the comments of a course, newest first
func (r *CommentRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Comment, error) {
	query := `
		SELECT cm.id, cm.course_id, cm.student_id, s.name, cm.comment, cm.created_at
		FROM comments cm
		JOIN students s ON s.id = cm.student_id
		WHERE cm.course_id = ?
		ORDER BY cm.created_at DESC, cm.id DESC
	`

	rows, err := r.db.DB.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	defer rows.Close()

	comments := make([]*models.Comment, 0)
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.CourseID,
			&comment.StudentID,
			&comment.StudentName,
			&comment.Comment,
			&comment.CreatedAt,
		); err != nil {
			return nil, apperrors.NewStorageError(err)
		}
		comments = append(comments, &comment)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return comments, nil
}

// Delete removes a comment by ID
func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return dberrors.Classify(err, apperrors.ErrCommentNotFound, apperrors.ErrConflict)
	}
	return requireAffected(result, apperrors.ErrCommentNotFound)
}

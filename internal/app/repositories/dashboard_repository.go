package repositories

import (
	"context"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/db"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// DashboardRepository reads aggregate counts for the admin dashboard
type DashboardRepository struct {
	db *db.MySQLDB
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(db *db.MySQLDB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Counts returns table sizes in a single round trip
func (r *DashboardRepository) Counts(ctx context.Context) (*models.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM students),
			(SELECT COUNT(*) FROM teachers),
			(SELECT COUNT(*) FROM courses),
			(SELECT COUNT(*) FROM exams),
			(SELECT COUNT(*) FROM questions)
	`

	var counts models.DashboardCounts
	if err := r.db.DB.QueryRowContext(ctx, query).Scan(
		&counts.Students,
		&counts.Teachers,
		&counts.Courses,
		&counts.Exams,
		&counts.Questions,
	); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return &counts, nil
}

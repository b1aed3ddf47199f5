package repositories

import (
	"context"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/db"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/dberrors"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *db.MySQLDB
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *db.MySQLDB) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

func classifyDepartment(err error) error {
	return dberrors.Classify(err, apperrors.ErrDepartmentNotFound, apperrors.ErrDepartmentAlreadyExists)
}

// Create creates a new department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (name)
		VALUES (?)
	`

	result, err := r.db.DB.ExecContext(ctx, query, department.Name)
	if err != nil {
		return classifyDepartment(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	department.ID = id
	return nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `
		SELECT id, name
		FROM departments
		WHERE id = ?
	`

	var department models.Department
	err := r.db.DB.QueryRowContext(ctx, query, id).Scan(&department.ID, &department.Name)
	if err != nil {
		return nil, classifyDepartment(err)
	}
	return &department, nil
}

// GetAll retrieves all departments ordered by name
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	query := `
		SELECT id, name
		FROM departments
		ORDER BY name
	`

	rows, err := r.db.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, classifyDepartment(err)
	}
	defer rows.Close()

	departments := make([]*models.Department, 0)
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(&department.ID, &department.Name); err != nil {
			return nil, apperrors.NewStorageError(err)
		}
		departments = append(departments, &department)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return departments, nil
}

// Update renames a department
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	query := `
		UPDATE departments
		SET name = ?
		WHERE id = ?
	`

	result, err := r.db.DB.ExecContext(ctx, query, department.Name, department.ID)
	if err != nil {
		return classifyDepartment(err)
	}
	return requireAffected(result, apperrors.ErrDepartmentNotFound)
}

// Delete deletes a department by ID. Referencing rows fall back to NULL.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM departments WHERE id = ?`, id)
	if err != nil {
		return classifyDepartment(err)
	}
	return requireAffected(result, apperrors.ErrDepartmentNotFound)
}

// Count returns the number of departments
func (r *DepartmentRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db.DB, "departments")
}

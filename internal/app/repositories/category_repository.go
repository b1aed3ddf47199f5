package repositories

import (
	"context"
	"database/sql"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/db"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/dberrors"
)

// CategoryRepository handles database operations for categories
type CategoryRepository struct {
	db *db.MySQLDB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *db.MySQLDB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func classifyCategory(err error) error {
	return dberrors.Classify(err, apperrors.ErrCategoryNotFound, apperrors.ErrCategoryAlreadyExists)
}

func scanCategory(row rowScanner) (*models.Category, error) {
	var (
		category    models.Category
		description sql.NullString
	)
	if err := row.Scan(&category.ID, &category.Name, &description); err != nil {
		return nil, err
	}
	category.Description = description.String
	return &category, nil
}

// Create creates a new category
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (name, description)
		VALUES (?, ?)
	`

	result, err := r.db.DB.ExecContext(ctx, query, category.Name, category.Description)
	if err != nil {
		return classifyCategory(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.NewStorageError(err)
	}
	category.ID = id
	return nil
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	row := r.db.DB.QueryRowContext(ctx, `SELECT id, name, description FROM categories WHERE id = ?`, id)
	category, err := scanCategory(row)
	if err != nil {
		return nil, classifyCategory(err)
	}
	return category, nil
}

// GetAll retrieves all categories ordered by name
func (r *CategoryRepository) GetAll(ctx context.Context) ([]*models.Category, error) {
	rows, err := r.db.DB.QueryContext(ctx, `SELECT id, name, description FROM categories ORDER BY name`)
	if err != nil {
		return nil, classifyCategory(err)
	}
	defer rows.Close()

	categories := make([]*models.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, apperrors.NewStorageError(err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return categories, nil
}

// Update replaces name and description of a category
func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	query := `
		UPDATE categories
		SET name = ?, description = ?
		WHERE id = ?
	`

	result, err := r.db.DB.ExecContext(ctx, query, category.Name, category.Description, category.ID)
	if err != nil {
		return classifyCategory(err)
	}
	return requireAffected(result, apperrors.ErrCategoryNotFound)
}

// Delete deletes a category by ID. Courses and exams keep a NULL category.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return classifyCategory(err)
	}
	return requireAffected(result, apperrors.ErrCategoryNotFound)
}

// Count returns the number of categories
func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db.DB, "categories")
}

package services

import (
	"context"
	"strings"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
)

// CategoryService handles category-related operations
type CategoryService struct {
	categoryRepo CategoryStore
}

// NewCategoryService creates a new category service instance
func NewCategoryService(categoryRepo CategoryStore) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// GetAllCategories retrieves all categories
func (s *CategoryService) GetAllCategories(ctx context.Context) ([]*models.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(ctx context.Context, req dto.CategoryRequest) (*models.Category, error) {
	name, err := normalizeName(req.Name)
	if err != nil {
		return nil, err
	}

	category := &models.Category{Name: name, Description: strings.TrimSpace(req.Description)}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory replaces name and description of a category
func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, req dto.CategoryRequest) (*models.Category, error) {
	name, err := normalizeName(req.Name)
	if err != nil {
		return nil, err
	}

	category := &models.Category{ID: id, Name: name, Description: strings.TrimSpace(req.Description)}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory deletes a category by ID
func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	return s.categoryRepo.Delete(ctx, id)
}

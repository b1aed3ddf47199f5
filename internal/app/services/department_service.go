package services

import (
	"context"
	"strings"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// DepartmentService handles department-related operations
type DepartmentService struct {
	departmentRepo DepartmentStore
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo DepartmentStore) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
	}
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.NewValidationError("name cannot be empty")
	}
	if len(name) > 100 {
		return "", apperrors.NewValidationError("name must be at most 100 characters")
	}
	return name, nil
}

// GetAllDepartments retrieves all departments
func (s *DepartmentService) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.GetAll(ctx)
}

// CreateDepartment creates a new department
func (s *DepartmentService) CreateDepartment(ctx context.Context, name string) (*models.Department, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	department := &models.Department{Name: name}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

// UpdateDepartment renames a department
func (s *DepartmentService) UpdateDepartment(ctx context.Context, id int64, name string) (*models.Department, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	department := &models.Department{ID: id, Name: name}
	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

// DeleteDepartment deletes a department by ID
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id int64) error {
	return s.departmentRepo.Delete(ctx, id)
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/vinayk/rollcall/internal/app/models"
	"github.com/vinayk/rollcall/internal/app/models/dto"
	"github.com/vinayk/rollcall/internal/pkg/apperrors"
)

// departmentService implements DepartmentService
type departmentService struct {
	departmentStore DepartmentStore
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentStore DepartmentStore) DepartmentService {
	return &departmentService{departmentStore: departmentStore}
}

// CreateDepartment creates a new department stamped with the caller's
// identity as provenance
func (s *departmentService) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest, submittedBy int64) (*models.Department, error) {
	if strings.TrimSpace(req.DepartmentName) == "" {
		return nil, fmt.Errorf("%w: department_name cannot be empty", apperrors.ErrValidationFailed)
	}

	department := &models.Department{
		DepartmentName: req.DepartmentName,
		SubmittedBy:    &submittedBy,
	}

	if err := s.departmentStore.Create(ctx, department); err != nil {
		return nil, fmt.Errorf("error creating department: %w", err)
	}

	return department, nil
}

// GetAllDepartments retrieves all departments
func (s *departmentService) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.departmentStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	return departments, nil
}

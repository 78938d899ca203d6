package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/vinayk/rollcall/internal/app/models"
	"github.com/vinayk/rollcall/internal/app/models/dto"
	"github.com/vinayk/rollcall/internal/pkg/apperrors"
)

// studentService implements StudentService
type studentService struct {
	studentStore    StudentStore
	departmentStore DepartmentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentStore StudentStore, departmentStore DepartmentStore) StudentService {
	return &studentService{
		studentStore:    studentStore,
		departmentStore: departmentStore,
	}
}

// CreateStudent creates a new student after checking the parent department
// exists
func (s *studentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest, submittedBy int64) (*models.Student, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("%w: full_name cannot be empty", apperrors.ErrValidationFailed)
	}

	exists, err := s.departmentStore.Exists(ctx, req.Department)
	if err != nil {
		return nil, fmt.Errorf("error checking department: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrDepartmentNotFound
	}

	student := &models.Student{
		FullName:     req.FullName,
		DepartmentID: req.Department,
		ClassName:    req.ClassName,
		SubmittedBy:  &submittedBy,
	}

	if err := s.studentStore.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetAllStudents retrieves all students
func (s *studentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	return students, nil
}

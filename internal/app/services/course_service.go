package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/vinayk/rollcall/internal/app/models"
	"github.com/vinayk/rollcall/internal/app/models/dto"
	"github.com/vinayk/rollcall/internal/pkg/apperrors"
)

// courseService implements CourseService
type courseService struct {
	courseStore     CourseStore
	departmentStore DepartmentStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseStore CourseStore, departmentStore DepartmentStore) CourseService {
	return &courseService{
		courseStore:     courseStore,
		departmentStore: departmentStore,
	}
}

// CreateCourse creates a new course after checking the parent department
// exists. The store maps a racing foreign key violation to the same error.
func (s *courseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest, submittedBy int64) (*models.Course, error) {
	if strings.TrimSpace(req.CourseName) == "" {
		return nil, fmt.Errorf("%w: course_name cannot be empty", apperrors.ErrValidationFailed)
	}

	if req.Semester <= 0 {
		return nil, fmt.Errorf("%w: semester must be positive", apperrors.ErrValidationFailed)
	}

	if req.LectureHours <= 0 {
		return nil, fmt.Errorf("%w: lecture_hours must be positive", apperrors.ErrValidationFailed)
	}

	exists, err := s.departmentStore.Exists(ctx, req.Department)
	if err != nil {
		return nil, fmt.Errorf("error checking department: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrDepartmentNotFound
	}

	course := &models.Course{
		CourseName:   req.CourseName,
		DepartmentID: req.Department,
		Semester:     req.Semester,
		ClassName:    req.ClassName,
		LectureHours: req.LectureHours,
		SubmittedBy:  &submittedBy,
	}

	if err := s.courseStore.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// GetAllCourses retrieves all courses
func (s *courseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	return courses, nil
}

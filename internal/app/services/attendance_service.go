package services

import (
	"context"
	"fmt"

	"github.com/vinayk/rollcall/internal/app/models"
	"github.com/vinayk/rollcall/internal/app/models/dto"
	"github.com/vinayk/rollcall/internal/pkg/apperrors"
)

// attendanceService implements AttendanceService
type attendanceService struct {
	attendanceStore AttendanceStore
	studentStore    StudentStore
	courseStore     CourseStore
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(attendanceStore AttendanceStore, studentStore StudentStore, courseStore CourseStore) AttendanceService {
	return &attendanceService{
		attendanceStore: attendanceStore,
		studentStore:    studentStore,
		courseStore:     courseStore,
	}
}

// CreateAttendance records a per-student, per-course attendance mark after
// checking both parents exist
func (s *attendanceService) CreateAttendance(ctx context.Context, req *dto.CreateAttendanceRequest, submittedBy int64) (*models.Attendance, error) {
	exists, err := s.studentStore.Exists(ctx, req.Student)
	if err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	exists, err = s.courseStore.Exists(ctx, req.Course)
	if err != nil {
		return nil, fmt.Errorf("error checking course: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	attendance := &models.Attendance{
		StudentID:   req.Student,
		CourseID:    req.Course,
		Present:     req.Present,
		SubmittedBy: &submittedBy,
	}

	if err := s.attendanceStore.Create(ctx, attendance); err != nil {
		return nil, err
	}

	return attendance, nil
}

// GetAllAttendance retrieves all attendance records
func (s *attendanceService) GetAllAttendance(ctx context.Context) ([]*models.Attendance, error) {
	records, err := s.attendanceStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance records: %w", err)
	}
	return records, nil
}

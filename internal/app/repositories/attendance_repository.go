package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vinayk/rollcall/internal/app/models"
	"github.com/vinayk/rollcall/internal/pkg/apperrors"
	"github.com/vinayk/rollcall/internal/pkg/dberrors"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Create creates a new attendance record
func (r *AttendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	query := `
		INSERT INTO attendance (student_id, course_id, present, submitted_by, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		attendance.StudentID,
		attendance.CourseID,
		attendance.Present,
		attendance.SubmittedBy,
		time.Now(),
	).Scan(&attendance.ID, &attendance.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrParentNotFound
		}
		return fmt.Errorf("error creating attendance record: %w", err)
	}

	return nil
}

// GetAll retrieves all attendance records ordered by ID
func (r *AttendanceRepository) GetAll(ctx context.Context) ([]*models.Attendance, error) {
	query := `
		SELECT id, student_id, course_id, present, submitted_by, updated_at
		FROM attendance
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var attendance models.Attendance
		if err := rows.Scan(
			&attendance.ID,
			&attendance.StudentID,
			&attendance.CourseID,
			&attendance.Present,
			&attendance.SubmittedBy,
			&attendance.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, &attendance)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

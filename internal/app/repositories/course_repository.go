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

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (course_name, department_id, semester, class_name, lecture_hours, submitted_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		course.CourseName,
		course.DepartmentID,
		course.Semester,
		course.ClassName,
		course.LectureHours,
		course.SubmittedBy,
		time.Now(),
	).Scan(&course.ID, &course.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetAll retrieves all courses ordered by ID
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, course_name, department_id, semester, class_name, lecture_hours, submitted_by, updated_at
		FROM courses
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.CourseName,
			&course.DepartmentID,
			&course.Semester,
			&course.ClassName,
			&course.LectureHours,
			&course.SubmittedBy,
			&course.UpdatedAt,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Exists checks if a course with the given ID exists
func (r *CourseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}
	return exists, nil
}

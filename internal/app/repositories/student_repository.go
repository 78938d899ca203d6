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

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create creates a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (full_name, department_id, class_name, submitted_by, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		student.FullName,
		student.DepartmentID,
		student.ClassName,
		student.SubmittedBy,
		time.Now(),
	).Scan(&student.ID, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetAll retrieves all students ordered by ID
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT id, full_name, department_id, class_name, submitted_by, updated_at
		FROM students
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.FullName,
			&student.DepartmentID,
			&student.ClassName,
			&student.SubmittedBy,
			&student.UpdatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Exists checks if a student with the given ID exists
func (r *StudentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

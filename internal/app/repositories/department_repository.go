package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vinayk/rollcall/internal/app/models"
	"github.com/vinayk/rollcall/internal/pkg/apperrors"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create creates a new department. The updated_at stamp is always
// server-generated.
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (department_name, submitted_by, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		department.DepartmentName,
		department.SubmittedBy,
		time.Now(),
	).Scan(&department.ID, &department.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `
		SELECT id, department_name, submitted_by, updated_at
		FROM departments
		WHERE id = $1
	`

	var department models.Department
	err := r.db.QueryRow(ctx, query, id).Scan(
		&department.ID,
		&department.DepartmentName,
		&department.SubmittedBy,
		&department.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

// GetAll retrieves all departments ordered by ID
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	query := `
		SELECT id, department_name, submitted_by, updated_at
		FROM departments
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(
			&department.ID,
			&department.DepartmentName,
			&department.SubmittedBy,
			&department.UpdatedAt,
		); err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// Exists checks if a department with the given ID exists
func (r *DepartmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM departments WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking department existence: %w", err)
	}
	return exists, nil
}

// Delete deletes a department by ID. Courses and students referencing it
// are removed by the schema's cascade rule.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

package models

import "time"

// Department represents a department row
type Department struct {
	ID             int64     `json:"id"`
	DepartmentName string    `json:"department_name"`
	SubmittedBy    *int64    `json:"submitted_by"`
	UpdatedAt      time.Time `json:"updated_at"`
}

package models

import "time"

// Student represents a student row
type Student struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"full_name"`
	DepartmentID int64     `json:"department"`
	ClassName    string    `json:"class_name"`
	SubmittedBy  *int64    `json:"submitted_by"`
	UpdatedAt    time.Time `json:"updated_at"`
}

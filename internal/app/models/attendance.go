package models

import "time"

// Attendance represents one per-student, per-course attendance mark
type Attendance struct {
	ID          int64     `json:"id"`
	StudentID   int64     `json:"student"`
	CourseID    int64     `json:"course"`
	Present     bool      `json:"present"`
	SubmittedBy *int64    `json:"submitted_by"`
	UpdatedAt   time.Time `json:"updated_at"`
}

package models

import "time"

// Course represents a course row. DepartmentID is required; the row is
// removed when its department is deleted.
type Course struct {
	ID           int64     `json:"id"`
	CourseName   string    `json:"course_name"`
	DepartmentID int64     `json:"department"`
	Semester     int       `json:"semester"`
	ClassName    string    `json:"class_name"`
	LectureHours int       `json:"lecture_hours"`
	SubmittedBy  *int64    `json:"submitted_by"`
	UpdatedAt    time.Time `json:"updated_at"`
}

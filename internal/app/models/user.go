package models

import "time"

// UserType enumerates the account types
type UserType string

const (
	UserTypeStudent UserType = "student"
	UserTypeTeacher UserType = "teacher"
	UserTypeAdmin   UserType = "admin"
)

// ValidUserType reports whether t is one of the known account types.
func ValidUserType(t UserType) bool {
	switch t {
	case UserTypeStudent, UserTypeTeacher, UserTypeAdmin:
		return true
	}
	return false
}

// User represents an account row. PasswordHash is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Username     *string   `json:"username"`
	FullName     string    `json:"full_name"`
	Type         UserType  `json:"type"`
	PasswordHash string    `json:"-"`
	IsStaff      bool      `json:"is_staff"`
	IsSuperuser  bool      `json:"is_superuser"`
	IsActive     bool      `json:"is_active"`
	SubmittedBy  *int64    `json:"submitted_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

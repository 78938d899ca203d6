package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrParentNotFound   = errors.New("referenced record not found")
	ErrValidationFailed = errors.New("validation failed")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
)

// User errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrInvalidPassword     = errors.New("invalid password format")
	ErrInvalidFullName     = errors.New("only alphabetic characters are allowed")
	ErrInvalidUserType     = errors.New("invalid user type")
	ErrSuperuserFlagsFalse = errors.New("superuser must have is_staff, is_superuser and is_active set")
)

// Department / course / student / attendance errors
var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrStudentNotFound    = errors.New("student not found")
)

package services

import (
	"context"
	"time"

	"github.com/vinayk/rollcall/internal/app/models"
	"github.com/vinayk/rollcall/internal/app/models/dto"
)

// Store interfaces consumed by the services. The pgx repositories satisfy
// them; tests substitute in-memory fakes.

// UserStore is the persistence surface for users
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// TokenStore is the persistence surface for refresh tokens
type TokenStore interface {
	CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error
	GetTokenByValue(ctx context.Context, token string) (int64, time.Time, bool, error)
	RevokeToken(ctx context.Context, token string) error
}

// DepartmentStore is the persistence surface for departments
type DepartmentStore interface {
	Create(ctx context.Context, department *models.Department) error
	GetAll(ctx context.Context) ([]*models.Department, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// CourseStore is the persistence surface for courses
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetAll(ctx context.Context) ([]*models.Course, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// StudentStore is the persistence surface for students
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetAll(ctx context.Context) ([]*models.Student, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// AttendanceStore is the persistence surface for attendance records
type AttendanceStore interface {
	Create(ctx context.Context, attendance *models.Attendance) error
	GetAll(ctx context.Context) ([]*models.Attendance, error)
}

// Service interfaces consumed by the controllers.

// AuthService handles registration, login, token refresh and user listing
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	CreateSuperuser(ctx context.Context, user *models.User, password string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// DepartmentService handles department operations
type DepartmentService interface {
	CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest, submittedBy int64) (*models.Department, error)
	GetAllDepartments(ctx context.Context) ([]*models.Department, error)
}

// CourseService handles course operations
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest, submittedBy int64) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
}

// StudentService handles student operations
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest, submittedBy int64) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
}

// AttendanceService handles attendance operations
type AttendanceService interface {
	CreateAttendance(ctx context.Context, req *dto.CreateAttendanceRequest, submittedBy int64) (*models.Attendance, error)
	GetAllAttendance(ctx context.Context) ([]*models.Attendance, error)
}

package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinayk/rollcall/internal/app/migrations"
	"github.com/vinayk/rollcall/internal/app/models"
	"github.com/vinayk/rollcall/internal/pkg/apperrors"
)

// setupTestDB connects to the database named by TEST_DATABASE_URL, applies
// migrations and truncates all tables. Tests are skipped when the variable
// is unset.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	migrator := migrations.NewMigrator(pool)
	require.NoError(t, migrator.MigrateFromDirectory(filepath.Join("..", "..", "..", "migrations")))

	_, err = pool.Exec(context.Background(),
		`TRUNCATE attendance, students, courses, departments, refresh_tokens, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return pool
}

func createTestUser(t *testing.T, repo *UserRepository, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		FullName:     "Test User",
		Type:         models.UserTypeTeacher,
		PasswordHash: "not-a-real-hash",
		IsActive:     true,
	}
	id, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	user.ID = id
	return user
}

func createTestDepartment(t *testing.T, repo *DepartmentRepository, name string, submittedBy *int64) *models.Department {
	t.Helper()
	department := &models.Department{DepartmentName: name, SubmittedBy: submittedBy}
	require.NoError(t, repo.Create(context.Background(), department))
	return department
}

func TestUserRepository(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	count, err := repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	username := "jdoe"
	user := &models.User{
		Email:        "jane@example.com",
		Username:     &username,
		FullName:     "Jane Doe",
		Type:         models.UserTypeTeacher,
		PasswordHash: "hash",
		IsStaff:      true,
		IsActive:     true,
	}
	id, err := repo.CreateUser(ctx, user)
	require.NoError(t, err)
	assert.Positive(t, id)

	fetched, err := repo.GetUserByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, fetched.ID)
	assert.Equal(t, "Jane Doe", fetched.FullName)
	assert.True(t, fetched.IsStaff)
	assert.False(t, fetched.IsSuperuser)
	require.NotNil(t, fetched.Username)
	assert.Equal(t, "jdoe", *fetched.Username)
	assert.False(t, fetched.CreatedAt.IsZero())

	byID, err := repo.GetUserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, fetched.Email, byID.Email)

	_, err = repo.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	exists, err := repo.EmailExists(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.UsernameExists(ctx, "jdoe")
	require.NoError(t, err)
	assert.True(t, exists)

	count, err = repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_duplicates(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	username := "jdoe"
	first := &models.User{
		Email: "jane@example.com", Username: &username, FullName: "Jane Doe",
		Type: models.UserTypeTeacher, PasswordHash: "hash", IsActive: true,
	}
	_, err := repo.CreateUser(ctx, first)
	require.NoError(t, err)

	dupEmail := &models.User{
		Email: "jane@example.com", FullName: "Other Jane",
		Type: models.UserTypeStudent, PasswordHash: "hash", IsActive: true,
	}
	_, err = repo.CreateUser(ctx, dupEmail)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	dupUsername := &models.User{
		Email: "other@example.com", Username: &username, FullName: "Other Jane",
		Type: models.UserTypeStudent, PasswordHash: "hash", IsActive: true,
	}
	_, err = repo.CreateUser(ctx, dupUsername)
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
}

func TestUserRepository_GetAllOrdered(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepository(pool)

	createTestUser(t, repo, "c@example.com")
	createTestUser(t, repo, "a@example.com")
	createTestUser(t, repo, "b@example.com")

	users, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "c@example.com", users[0].Email)
	assert.Equal(t, "a@example.com", users[1].Email)
	assert.Equal(t, "b@example.com", users[2].Email)
}

func TestUserRepository_DeleteNullsProvenance(t *testing.T) {
	pool := setupTestDB(t)
	userRepo := NewUserRepository(pool)
	departmentRepo := NewDepartmentRepository(pool)
	ctx := context.Background()

	staff := createTestUser(t, userRepo, "staff@example.com")
	department := createTestDepartment(t, departmentRepo, "Computer Science", &staff.ID)

	require.NoError(t, userRepo.Delete(ctx, staff.ID))

	// The department survives with its provenance reference nulled
	fetched, err := departmentRepo.GetByID(ctx, department.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.SubmittedBy)

	assert.ErrorIs(t, userRepo.Delete(ctx, staff.ID), apperrors.ErrUserNotFound)
}

func TestDepartmentRepository(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewDepartmentRepository(pool)
	ctx := context.Background()

	department := createTestDepartment(t, repo, "Physics", nil)
	assert.Positive(t, department.ID)
	assert.False(t, department.UpdatedAt.IsZero())

	exists, err := repo.Exists(ctx, department.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, department.ID+100)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.GetByID(ctx, department.ID+100)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)

	createTestDepartment(t, repo, "Chemistry", nil)
	departments, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, departments, 2)
	assert.Equal(t, "Physics", departments[0].DepartmentName)
	assert.Equal(t, "Chemistry", departments[1].DepartmentName)
}

func TestDepartmentRepository_DeleteCascades(t *testing.T) {
	pool := setupTestDB(t)
	departmentRepo := NewDepartmentRepository(pool)
	courseRepo := NewCourseRepository(pool)
	studentRepo := NewStudentRepository(pool)
	attendanceRepo := NewAttendanceRepository(pool)
	ctx := context.Background()

	department := createTestDepartment(t, departmentRepo, "History", nil)

	course := &models.Course{
		CourseName: "World History", DepartmentID: department.ID,
		Semester: 1, ClassName: "H-1", LectureHours: 2,
	}
	require.NoError(t, courseRepo.Create(ctx, course))

	student := &models.Student{
		FullName: "Alice Brown", DepartmentID: department.ID, ClassName: "H-1",
	}
	require.NoError(t, studentRepo.Create(ctx, student))

	attendance := &models.Attendance{StudentID: student.ID, CourseID: course.ID, Present: true}
	require.NoError(t, attendanceRepo.Create(ctx, attendance))

	require.NoError(t, departmentRepo.Delete(ctx, department.ID))

	courses, err := courseRepo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, courses)

	students, err := studentRepo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, students)

	records, err := attendanceRepo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCourseRepository_missingDepartment(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewCourseRepository(pool)

	course := &models.Course{
		CourseName: "Orphan Course", DepartmentID: 999,
		Semester: 1, ClassName: "X-1", LectureHours: 2,
	}
	err := repo.Create(context.Background(), course)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}

func TestStudentRepository_missingDepartment(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewStudentRepository(pool)

	student := &models.Student{FullName: "Orphan Student", DepartmentID: 999, ClassName: "X-1"}
	err := repo.Create(context.Background(), student)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}

func TestAttendanceRepository_missingParents(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewAttendanceRepository(pool)

	attendance := &models.Attendance{StudentID: 999, CourseID: 999}
	err := repo.Create(context.Background(), attendance)
	assert.ErrorIs(t, err, apperrors.ErrParentNotFound)
}

func TestTokenRepository(t *testing.T) {
	pool := setupTestDB(t)
	userRepo := NewUserRepository(pool)
	repo := NewTokenRepository(pool)
	ctx := context.Background()

	user := createTestUser(t, userRepo, "jane@example.com")
	expiry := time.Now().Add(time.Hour)

	require.NoError(t, repo.CreateToken(ctx, "refresh-token-1", user.ID, expiry))

	userID, gotExpiry, revoked, err := repo.GetTokenByValue(ctx, "refresh-token-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.WithinDuration(t, expiry, gotExpiry, time.Second)
	assert.False(t, revoked)

	_, _, _, err = repo.GetTokenByValue(ctx, "unknown-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)

	require.NoError(t, repo.RevokeToken(ctx, "refresh-token-1"))
	_, _, revoked, err = repo.GetTokenByValue(ctx, "refresh-token-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.ErrorIs(t, repo.RevokeToken(ctx, "unknown-token"), apperrors.ErrTokenNotFound)
}

func TestTokenRepository_DeleteExpiredTokens(t *testing.T) {
	pool := setupTestDB(t)
	userRepo := NewUserRepository(pool)
	repo := NewTokenRepository(pool)
	ctx := context.Background()

	user := createTestUser(t, userRepo, "jane@example.com")

	require.NoError(t, repo.CreateToken(ctx, "live-token", user.ID, time.Now().Add(time.Hour)))
	require.NoError(t, repo.CreateToken(ctx, "dead-token", user.ID, time.Now().Add(-time.Hour)))

	removed, err := repo.DeleteExpiredTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, _, _, err = repo.GetTokenByValue(ctx, "live-token")
	assert.NoError(t, err)
	_, _, _, err = repo.GetTokenByValue(ctx, "dead-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

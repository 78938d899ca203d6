package services

import (
	"context"
	"time"

	"github.com/vinayk/rollcall/internal/app/models"
	"github.com/vinayk/rollcall/internal/pkg/apperrors"
)

// In-memory stores standing in for the pgx repositories.

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
	err    error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User), nextID: 1}
}

func (s *fakeUserStore) CreateUser(_ context.Context, user *models.User) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	for _, u := range s.users {
		if u.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		if user.Username != nil && u.Username != nil && *u.Username == *user.Username {
			return 0, apperrors.ErrUsernameTaken
		}
	}
	id := s.nextID
	s.nextID++
	stored := *user
	stored.ID = id
	s.users[id] = &stored
	return id, nil
}

func (s *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *fakeUserStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *fakeUserStore) GetAll(_ context.Context) ([]*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	users := make([]*models.User, 0, len(s.users))
	for id := int64(1); id < s.nextID; id++ {
		if u, ok := s.users[id]; ok {
			copied := *u
			users = append(users, &copied)
		}
	}
	return users, nil
}

func (s *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for _, u := range s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) UsernameExists(_ context.Context, username string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for _, u := range s.users {
		if u.Username != nil && *u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type storedToken struct {
	userID     int64
	expiryDate time.Time
	isRevoked  bool
}

type fakeTokenStore struct {
	tokens map[string]*storedToken
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]*storedToken)}
}

func (s *fakeTokenStore) CreateToken(_ context.Context, token string, userID int64, expiryDate time.Time) error {
	s.tokens[token] = &storedToken{userID: userID, expiryDate: expiryDate}
	return nil
}

func (s *fakeTokenStore) GetTokenByValue(_ context.Context, token string) (int64, time.Time, bool, error) {
	stored, ok := s.tokens[token]
	if !ok {
		return 0, time.Time{}, false, apperrors.ErrTokenNotFound
	}
	return stored.userID, stored.expiryDate, stored.isRevoked, nil
}

func (s *fakeTokenStore) RevokeToken(_ context.Context, token string) error {
	stored, ok := s.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	stored.isRevoked = true
	return nil
}

type fakeDepartmentStore struct {
	departments map[int64]*models.Department
	nextID      int64
	err         error
}

func newFakeDepartmentStore() *fakeDepartmentStore {
	return &fakeDepartmentStore{departments: make(map[int64]*models.Department), nextID: 1}
}

func (s *fakeDepartmentStore) Create(_ context.Context, department *models.Department) error {
	if s.err != nil {
		return s.err
	}
	department.ID = s.nextID
	department.UpdatedAt = time.Now()
	s.nextID++
	stored := *department
	s.departments[stored.ID] = &stored
	return nil
}

func (s *fakeDepartmentStore) GetAll(_ context.Context) ([]*models.Department, error) {
	if s.err != nil {
		return nil, s.err
	}
	departments := make([]*models.Department, 0, len(s.departments))
	for id := int64(1); id < s.nextID; id++ {
		if d, ok := s.departments[id]; ok {
			copied := *d
			departments = append(departments, &copied)
		}
	}
	return departments, nil
}

func (s *fakeDepartmentStore) Exists(_ context.Context, id int64) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.departments[id]
	return ok, nil
}

type fakeCourseStore struct {
	courses map[int64]*models.Course
	nextID  int64
	err     error
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[int64]*models.Course), nextID: 1}
}

func (s *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	if s.err != nil {
		return s.err
	}
	course.ID = s.nextID
	course.UpdatedAt = time.Now()
	s.nextID++
	stored := *course
	s.courses[stored.ID] = &stored
	return nil
}

func (s *fakeCourseStore) GetAll(_ context.Context) ([]*models.Course, error) {
	if s.err != nil {
		return nil, s.err
	}
	courses := make([]*models.Course, 0, len(s.courses))
	for id := int64(1); id < s.nextID; id++ {
		if c, ok := s.courses[id]; ok {
			copied := *c
			courses = append(courses, &copied)
		}
	}
	return courses, nil
}

func (s *fakeCourseStore) Exists(_ context.Context, id int64) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.courses[id]
	return ok, nil
}

type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64
	err      error
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]*models.Student), nextID: 1}
}

func (s *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	if s.err != nil {
		return s.err
	}
	student.ID = s.nextID
	student.UpdatedAt = time.Now()
	s.nextID++
	stored := *student
	s.students[stored.ID] = &stored
	return nil
}

func (s *fakeStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	if s.err != nil {
		return nil, s.err
	}
	students := make([]*models.Student, 0, len(s.students))
	for id := int64(1); id < s.nextID; id++ {
		if st, ok := s.students[id]; ok {
			copied := *st
			students = append(students, &copied)
		}
	}
	return students, nil
}

func (s *fakeStudentStore) Exists(_ context.Context, id int64) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.students[id]
	return ok, nil
}

type fakeAttendanceStore struct {
	records map[int64]*models.Attendance
	nextID  int64
	err     error
}

func newFakeAttendanceStore() *fakeAttendanceStore {
	return &fakeAttendanceStore{records: make(map[int64]*models.Attendance), nextID: 1}
}

func (s *fakeAttendanceStore) Create(_ context.Context, attendance *models.Attendance) error {
	if s.err != nil {
		return s.err
	}
	attendance.ID = s.nextID
	attendance.UpdatedAt = time.Now()
	s.nextID++
	stored := *attendance
	s.records[stored.ID] = &stored
	return nil
}

func (s *fakeAttendanceStore) GetAll(_ context.Context) ([]*models.Attendance, error) {
	if s.err != nil {
		return nil, s.err
	}
	records := make([]*models.Attendance, 0, len(s.records))
	for id := int64(1); id < s.nextID; id++ {
		if a, ok := s.records[id]; ok {
			copied := *a
			records = append(records, &copied)
		}
	}
	return records, nil
}

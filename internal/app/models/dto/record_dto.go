package dto

// CreateDepartmentRequest carries a department creation payload
type CreateDepartmentRequest struct {
	DepartmentName string `json:"department_name" binding:"required"`
}

// CreateCourseRequest carries a course creation payload
type CreateCourseRequest struct {
	CourseName   string `json:"course_name" binding:"required"`
	Department   int64  `json:"department" binding:"required"`
	Semester     int    `json:"semester" binding:"required"`
	ClassName    string `json:"class_name" binding:"required"`
	LectureHours int    `json:"lecture_hours" binding:"required"`
}

// CreateStudentRequest carries a student creation payload
type CreateStudentRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Department int64  `json:"department" binding:"required"`
	ClassName  string `json:"class_name" binding:"required"`
}

// CreateAttendanceRequest carries an attendance mark. Present defaults to
// false when omitted.
type CreateAttendanceRequest struct {
	Student int64 `json:"student" binding:"required"`
	Course  int64 `json:"course" binding:"required"`
	Present bool  `json:"present"`
}

package routes

import (
	"github.com/gin-gonic/gin"
	appauth "github.com/vinayk/rollcall/internal/app/auth"
	"github.com/vinayk/rollcall/internal/app/controllers"
	"github.com/vinayk/rollcall/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	departmentController *controllers.DepartmentController,
	courseController *controllers.CourseController,
	studentController *controllers.StudentController,
	attendanceController *controllers.AttendanceController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Public auth routes
	user := router.Group("/user")
	{
		user.POST("/register", authController.Register)
		user.POST("/login", authController.Login)
		user.POST("/refresh", authController.Refresh)

		user.GET("/user_list",
			authMiddleware.JWTAuth(),
			authMiddleware.Require(appauth.ResourceUser, appauth.OperationList),
			authController.UserList)
	}

	departments := router.Group("/departments", authMiddleware.JWTAuth())
	{
		departments.GET("/",
			authMiddleware.Require(appauth.ResourceDepartment, appauth.OperationList),
			departmentController.ListDepartments)
		departments.POST("/",
			authMiddleware.Require(appauth.ResourceDepartment, appauth.OperationCreate),
			departmentController.CreateDepartment)
	}

	course := router.Group("/course", authMiddleware.JWTAuth())
	{
		course.GET("/",
			authMiddleware.Require(appauth.ResourceCourse, appauth.OperationList),
			courseController.ListCourses)
		course.POST("/",
			authMiddleware.Require(appauth.ResourceCourse, appauth.OperationCreate),
			courseController.CreateCourse)
	}

	student := router.Group("/student", authMiddleware.JWTAuth())
	{
		student.GET("/",
			authMiddleware.Require(appauth.ResourceStudent, appauth.OperationList),
			studentController.ListStudents)
		student.POST("/",
			authMiddleware.Require(appauth.ResourceStudent, appauth.OperationCreate),
			studentController.CreateStudent)
	}

	attendance := router.Group("/attendance", authMiddleware.JWTAuth())
	{
		attendance.GET("/",
			authMiddleware.Require(appauth.ResourceAttendance, appauth.OperationList),
			attendanceController.ListAttendance)
		attendance.POST("/",
			authMiddleware.Require(appauth.ResourceAttendance, appauth.OperationCreate),
			attendanceController.CreateAttendance)
	}
}

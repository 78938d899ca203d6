package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vinayk/rollcall/internal/app/models/dto"
	"github.com/vinayk/rollcall/internal/app/services"
	"github.com/vinayk/rollcall/internal/middleware"
)

// StudentController handles student endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// CreateStudent handles POST /student/
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	if _, err := c.studentService.CreateStudent(ctx.Request.Context(), &req, identity.UserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Student Details created Successfully."))
}

// ListStudents handles GET /student/
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(students))
}

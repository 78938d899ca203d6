package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vinayk/rollcall/internal/app/models/dto"
	"github.com/vinayk/rollcall/internal/app/services"
	"github.com/vinayk/rollcall/internal/middleware"
)

// CourseController handles course endpoints
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// CreateCourse handles POST /course/
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	if _, err := c.courseService.CreateCourse(ctx.Request.Context(), &req, identity.UserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Course Created Successfully."))
}

// ListCourses handles GET /course/
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(courses))
}

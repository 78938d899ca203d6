package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vinayk/rollcall/internal/app/models/dto"
	"github.com/vinayk/rollcall/internal/app/services"
	"github.com/vinayk/rollcall/internal/middleware"
)

// AttendanceController handles attendance endpoints
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// CreateAttendance handles POST /attendance/
func (c *AttendanceController) CreateAttendance(ctx *gin.Context) {
	var req dto.CreateAttendanceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	if _, err := c.attendanceService.CreateAttendance(ctx.Request.Context(), &req, identity.UserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Student Attendance has been registered."))
}

// ListAttendance handles GET /attendance/
func (c *AttendanceController) ListAttendance(ctx *gin.Context) {
	records, err := c.attendanceService.GetAllAttendance(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(records))
}

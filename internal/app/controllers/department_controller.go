package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vinayk/rollcall/internal/app/models/dto"
	"github.com/vinayk/rollcall/internal/app/services"
	"github.com/vinayk/rollcall/internal/middleware"
)

// DepartmentController handles department endpoints
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

// CreateDepartment handles POST /departments/
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	if _, err := c.departmentService.CreateDepartment(ctx.Request.Context(), &req, identity.UserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("department created successfully."))
}

// ListDepartments handles GET /departments/
func (c *DepartmentController) ListDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.GetAllDepartments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(departments))
}

package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/vinayk/rollcall/internal/app/models/dto"
)

// BindJSON binds the request body into obj and writes a structured 400 on
// failure. Returns false when binding failed and a response was written.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			fields := make(map[string]string, len(validationErrs))
			for _, fieldErr := range validationErrs {
				fields[fieldErr.Field()] = formatValidationError(fieldErr)
			}
			errorDetail = errorDetail.WithDetails(fields)
		} else {
			errorDetail = errorDetail.WithDetails(err.Error())
		}

		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}

	return true
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	appauth "github.com/vinayk/rollcall/internal/app/auth"
	"github.com/vinayk/rollcall/internal/app/models/dto"
	"github.com/vinayk/rollcall/internal/pkg/auth"
)

// identityKey is the gin context key holding the authenticated identity
const identityKey = "identity"

// AuthMiddleware handles authentication and policy enforcement
type AuthMiddleware struct {
	jwtService *auth.JWTService
	policy     appauth.Policy
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, policy appauth.Policy) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		policy:     policy,
	}
}

// JWTAuth validates the bearer token and stores the caller identity in the
// request context
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorDetails := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				errorCode = dto.ErrorCodeExpiredToken
				errorDetails = "Token has expired"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed")
			errorDetail = errorDetail.WithDetails(errorDetails)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(identityKey, appauth.Identity{
			UserID:  claims.UserID,
			Email:   claims.Email,
			IsStaff: claims.IsStaff,
		})

		c.Next()
	}
}

// Require enforces the access policy for a resource operation. It must run
// after JWTAuth.
func (m *AuthMiddleware) Require(resource appauth.Resource, operation appauth.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		if !m.policy.Allows(resource, operation, identity) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "You do not have permission to perform this action.")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}

// IdentityFromContext returns the authenticated identity stored by JWTAuth
func IdentityFromContext(c *gin.Context) (appauth.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return appauth.Identity{}, false
	}

	identity, ok := value.(appauth.Identity)
	return identity, ok
}

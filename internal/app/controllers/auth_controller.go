package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/vinayk/rollcall/internal/app/models/dto"
	"github.com/vinayk/rollcall/internal/app/services"
	"github.com/vinayk/rollcall/internal/middleware"
)

// AuthController handles user registration, login, token refresh and the
// user list
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /user/register
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", user.ID).Str("email", user.Email).Msg("User registered")
	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("User Created Successfully."))
}

// Login handles POST /user/login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	tokens, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tokens)
}

// Refresh handles POST /user/refresh
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	tokens, err := c.authService.Refresh(ctx.Request.Context(), req.Refresh)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tokens)
}

// UserList handles GET /user/user_list
func (c *AuthController) UserList(ctx *gin.Context) {
	users, err := c.authService.ListUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(users))
}

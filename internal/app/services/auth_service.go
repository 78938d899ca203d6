package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/vinayk/rollcall/internal/app/models"
	"github.com/vinayk/rollcall/internal/app/models/dto"
	"github.com/vinayk/rollcall/internal/pkg/apperrors"
	"github.com/vinayk/rollcall/internal/pkg/auth"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	fullNameRegex = regexp.MustCompile(`^[a-zA-Z ]+$`)
)

// authService implements AuthService
type authService struct {
	userStore  UserStore
	tokenStore TokenStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userStore UserStore, tokenStore TokenStore, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		userStore:  userStore,
		tokenStore: tokenStore,
		jwtService: jwtService,
		logger:     logger,
	}
}

// validateEmail validates an email address
func (s *authService) validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}

	if !emailRegex.MatchString(email) {
		return apperrors.ErrInvalidEmail
	}

	return nil
}

// validatePassword checks if a password meets requirements
func (s *authService) validatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}

	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", apperrors.ErrInvalidPassword)
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
	}
	if !hasLetter {
		return fmt.Errorf("%w: password must contain at least one letter", apperrors.ErrInvalidPassword)
	}
	if !hasDigit {
		return fmt.Errorf("%w: password must contain at least one digit", apperrors.ErrInvalidPassword)
	}

	return nil
}

// validateFullName checks the alphabetic-only rule for names
func (s *authService) validateFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return fmt.Errorf("%w: full name cannot be empty", apperrors.ErrValidationFailed)
	}

	if !fullNameRegex.MatchString(fullName) {
		return apperrors.ErrInvalidFullName
	}

	return nil
}

// Register creates a new user account
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}

	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.validateFullName(req.FullName); err != nil {
		return nil, err
	}

	userType := models.UserType(req.Type)
	if !models.ValidUserType(userType) {
		return nil, apperrors.ErrInvalidUserType
	}

	exists, err := s.userStore.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	if req.Username != nil && *req.Username != "" {
		exists, err = s.userStore.UsernameExists(ctx, *req.Username)
		if err != nil {
			return nil, fmt.Errorf("error checking if username exists: %w", err)
		}
		if exists {
			return nil, apperrors.ErrUsernameTaken
		}
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		Username:     req.Username,
		FullName:     req.FullName,
		Type:         userType,
		PasswordHash: hashedPassword,
		IsActive:     true,
	}

	// The store maps concurrent duplicate inserts back to the same
	// validation errors as the pre-checks above.
	userID, err := s.userStore.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) || errors.Is(err, apperrors.ErrUsernameTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("user creation error: %w", err)
	}

	user.ID = userID
	return user, nil
}

// Login authenticates a user and issues a token pair. Failures are
// deliberately uniform: a missing account and a wrong password produce the
// same error.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.userStore.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.generateTokenResponse(ctx, user)
}

// Refresh mints a new token pair from a refresh token and revokes the old
// one so it cannot be replayed.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	userID, expiryDate, isRevoked, err := s.tokenStore.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenNotFound) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, fmt.Errorf("token validation error: %w", err)
	}

	if expiryDate.Before(time.Now()) {
		_ = s.tokenStore.RevokeToken(ctx, refreshToken)
		return nil, apperrors.ErrTokenExpired
	}

	if isRevoked {
		return nil, apperrors.ErrTokenRevoked
	}

	user, err := s.userStore.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	if err := s.tokenStore.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return s.generateTokenResponse(ctx, user)
}

// CreateSuperuser stores a superuser account. The staff, superuser and
// active flags must all be set on the template; a superuser with any of
// them false is rejected.
func (s *authService) CreateSuperuser(ctx context.Context, user *models.User, password string) (*models.User, error) {
	if !user.IsStaff || !user.IsSuperuser || !user.IsActive {
		return nil, apperrors.ErrSuperuserFlagsFalse
	}

	if err := s.validateEmail(user.Email); err != nil {
		return nil, err
	}

	if err := s.validatePassword(password); err != nil {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}
	user.PasswordHash = hashedPassword

	userID, err := s.userStore.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("superuser creation error: %w", err)
	}

	user.ID = userID
	return user, nil
}

// ListUsers returns all user accounts
func (s *authService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

// generateTokenResponse creates and persists a token pair for a user
func (s *authService) generateTokenResponse(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	tokenExpiry := s.jwtService.GetRefreshTokenExpiry()

	if err := s.tokenStore.CreateToken(ctx, refreshToken, user.ID, tokenExpiry); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	return &dto.TokenResponse{
		Access:  accessToken,
		Refresh: refreshToken,
	}, nil
}

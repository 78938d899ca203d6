package dto

// RegisterRequest carries a user registration payload
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required"`
	Password string  `json:"password" binding:"required"`
	FullName string  `json:"full_name" binding:"required"`
	Type     string  `json:"type" binding:"required"`
	Username *string `json:"username"`
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// TokenResponse is the login/refresh response body
type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

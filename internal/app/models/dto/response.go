package dto

// APIResponse is the standard success envelope. Success is always true.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// NewMessageResponse creates a success envelope carrying only a message
func NewMessageResponse(message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
	}
}

// NewDataResponse creates a success envelope carrying a data payload
func NewDataResponse(data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Data:    data,
	}
}

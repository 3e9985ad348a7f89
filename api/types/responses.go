package types

import "github.com/gin-gonic/gin"

// UserIDKey is the gin context key under which the authenticated user ID is stored
const UserIDKey = "user_id"

// CurrentUserID returns the authenticated user ID set by the auth middleware
func CurrentUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// ErrorResponse is the uniform error body returned by all handlers
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a simple confirmation body
type MessageResponse struct {
	Message string `json:"message"`
}

// ProcessResponse reports the outcome of a project processing run
type ProcessResponse struct {
	Message        string `json:"message"`
	TotalFiles     int    `json:"total_files"`
	ProcessedFiles int    `json:"processed_files"`
	Status         string `json:"status"`
}

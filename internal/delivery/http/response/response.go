package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON envelope.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
	// ErrorMessages carries per-field validation failures.
	ErrorMessages interface{} `json:"errorMessages,omitempty"`
	// Stack is only populated outside production.
	Stack     string `json:"stack,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func requestID(c *gin.Context) string {
	id, _ := c.Get("RequestID")
	idStr, _ := id.(string)
	return idStr
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Paginated sends a success response with pagination metadata
func Paginated(c *gin.Context, code int, message string, data interface{}, meta interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Meta:      meta,
		RequestID: requestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, errorMessages interface{}, stack string) {
	c.JSON(code, Response{
		Success:       false,
		Message:       message,
		ErrorMessages: errorMessages,
		Stack:         stack,
		RequestID:     requestID(c),
	})
}

package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/validation"
)

// ErrorHandler translates errors appended to the gin context into the API
// envelope. Handlers call c.Error(err) and return; this is the only place
// status codes and messages are decided.
func ErrorHandler(includeStack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var stack string
		if includeStack {
			stack = err.Error()
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message, nil, stack)
			return
		}

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.Error(c, http.StatusBadRequest, "Validation failed", validation.Format(validationErrs), stack)
			return
		}

		// Never expose internal error details to clients.
		logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil, stack)
	}
}

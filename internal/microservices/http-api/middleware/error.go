package middleware

import (
	"net/http"

	"creatorhub/pkg/apperrors"
	"creatorhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error attached to the context as {"error": msg}.
// Tagged errors keep their status and message; anything else is a 500 whose
// details are only logged.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := apperrors.StatusOf(err)
		message := "internal server error"

		if appErr, ok := apperrors.As(err); ok && status < http.StatusInternalServerError {
			message = appErr.Message
		} else {
			logger.Error().
				Err(err).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("request failed")
		}

		c.JSON(status, gin.H{"error": message})
	}
}

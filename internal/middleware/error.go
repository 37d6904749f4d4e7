package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/jwalitptl/medlink-api/pkg/errors"
	"github.com/jwalitptl/medlink-api/pkg/httputil"
	"github.com/jwalitptl/medlink-api/pkg/logger"
)

// ErrorHandler logs errors attached to the context and, when the handler
// did not write a response, replies with the last one.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only handle errors if they exist
		if len(c.Errors) == 0 {
			return
		}

		log := l.WithContext(c.Request.Context())
		for _, e := range c.Errors {
			if e.IsType(gin.ErrorTypeBind) || clientError(e.Err) {
				log.Debug("Request rejected", "error", e.Error(), "path", c.Request.URL.Path)
				continue
			}
			log.Error(e.Err, "Request error",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"client_ip", c.ClientIP())
		}

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		status := http.StatusInternalServerError
		message := "Internal server error"
		if appErr, ok := apperrors.As(lastErr.Err); ok {
			status = appErr.StatusCode()
			message = appErr.Message
		}
		c.JSON(status, httputil.NewErrorResponse(message))
	}
}

func clientError(err error) bool {
	appErr, ok := apperrors.As(err)
	return ok && appErr.StatusCode() < http.StatusInternalServerError
}

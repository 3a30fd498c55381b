package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"estate-service/pkg/apperr"
	"estate-service/pkg/logger"
)

// ErrorHandler is the error normalization layer: the single place where
// typed errors become HTTP responses. Handlers and pipeline steps record
// errors on the context; after the chain finishes, the first recorded error
// is mapped to its documented status and envelope. Errors without a
// recognized kind are surfaced as 500 with a generic message, and the cause
// is kept in the logs only.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		writeFailure(c, log, c.Errors[0].Err)
	}
}

// writeFailure renders the uniform failure envelope for err.
func writeFailure(c *gin.Context, log *zap.Logger, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.Unexpected(err)
	}

	if appErr.Kind == apperr.KindUnexpected {
		logger.WithContext(c.Request.Context(), log).Error("unexpected failure",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}

	c.JSON(appErr.Kind.HTTPStatus(), gin.H{
		"success": false,
		"message": appErr.Message,
		"error":   appErr.Kind.String(),
	})
}

package middleware

import (
	"github.com/gin-gonic/gin"

	"estate-service/internal/schema"
	"estate-service/pkg/apperr"
)

// ValidateBody validates the JSON request body against a declared schema
// and attaches the normalized payload for the handler. Validation always
// short-circuits before the handler runs, so invalid input never reaches a
// write.
func ValidateBody(s schema.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload map[string]any
		if err := c.ShouldBindJSON(&payload); err != nil {
			fail(c, apperr.Validation("Invalid request body"))
			return
		}

		normalized, err := s.Validate(payload)
		if err != nil {
			fail(c, err)
			return
		}

		SetPayload(c, normalized)
		c.Next()
	}
}

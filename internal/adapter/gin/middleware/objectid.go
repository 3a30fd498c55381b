package middleware

import (
	"github.com/gin-gonic/gin"

	"estate-service/pkg/apperr"
	"estate-service/pkg/identifier"
)

// ValidID checks the lexical shape of a path identifier before it reaches
// any data query. Malformed identifiers are rejected without touching
// storage; a well-formed identifier that matches nothing is a not-found
// outcome discovered later by the data layer.
func ValidID(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !identifier.IsValid(c.Param(param)) {
			fail(c, apperr.MalformedID())
			return
		}
		c.Next()
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estate-service/internal/listing"
)

// Handlers never format HTTP error bodies themselves: failures are recorded
// on the context and rendered by the error normalization middleware. These
// helpers cover the success envelopes.

// respondOK writes the uniform success envelope with a payload under key.
func respondOK(c *gin.Context, message, key string, data any) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		key:       data,
	})
}

// respondCreated writes the success envelope for a newly created resource.
func respondCreated(c *gin.Context, message, key string, data any) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": message,
		key:       data,
	})
}

// respondMessage writes a success envelope with no payload.
func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

// respondPage writes the listing envelope. An empty page is a 200 with an
// empty result array, never a 404.
func respondPage[T any](c *gin.Context, result []T, pagination listing.Pagination) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"result":     result,
		"pagination": pagination,
	})
}

// abort records a typed error for the error normalization middleware.
func abort(c *gin.Context, err error) {
	_ = c.Error(err)
}

// Normalized payload accessors. Schema validation has already coerced the
// values, so the type assertions cannot fail for declared fields.

func str(payload map[string]any, key string) string {
	v, _ := payload[key].(string)
	return v
}

func num(payload map[string]any, key string) float64 {
	v, _ := payload[key].(float64)
	return v
}

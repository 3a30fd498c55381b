package middleware

import (
	"github.com/gin-gonic/gin"

	"estate-service/internal/domain/principal"
	"estate-service/pkg/apperr"
)

const (
	principalKey = "principal"
	payloadKey   = "payload"
)

// SetPrincipal attaches the resolved principal to the request for downstream
// steps and the handler.
func SetPrincipal(c *gin.Context, p *principal.Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the principal attached by the authenticate step, or
// nil if the route never authenticated.
func PrincipalFrom(c *gin.Context) *principal.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*principal.Principal)
	return p
}

// SetPayload attaches the normalized request payload produced by body
// validation.
func SetPayload(c *gin.Context, payload map[string]any) {
	c.Set(payloadKey, payload)
}

// PayloadFrom returns the normalized payload attached by the validation
// step. Routes without body validation yield nil.
func PayloadFrom(c *gin.Context) map[string]any {
	v, ok := c.Get(payloadKey)
	if !ok {
		return nil
	}
	payload, _ := v.(map[string]any)
	return payload
}

// fail records a typed error and stops the pipeline; the error handler
// middleware turns it into the client response. Later steps never run.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// failUnauthenticated is the shared deny for guard steps that found no
// principal on the request.
func failUnauthenticated(c *gin.Context) {
	fail(c, apperr.MissingToken())
}

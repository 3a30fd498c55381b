package middleware

import (
	"github.com/gin-gonic/gin"

	"estate-service/internal/domain/principal"
	"estate-service/pkg/apperr"
)

// RequireRole allows only principals holding exactly the given role.
func RequireRole(role principal.Role) gin.HandlerFunc {
	return RequireAnyRole(role)
}

// RequireAnyRole allows principals holding any of the given roles.
func RequireAnyRole(roles ...principal.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := PrincipalFrom(c)
		if p == nil {
			failUnauthenticated(c)
			return
		}
		if !p.HasAnyRole(roles...) {
			fail(c, apperr.Forbidden(""))
			return
		}
		c.Next()
	}
}

// RequireVerifiedVendor allows only vendors whose account has been verified.
func RequireVerifiedVendor() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := PrincipalFrom(c)
		if p == nil {
			failUnauthenticated(c)
			return
		}
		if !p.IsVerifiedVendor() {
			fail(c, apperr.Forbidden(""))
			return
		}
		c.Next()
	}
}

// RequireVendor allows any vendor, verified or not. Used for routes a vendor
// needs before verification completes, like browsing their own listings.
func RequireVendor() gin.HandlerFunc {
	return RequireAnyRole(principal.RoleVendor)
}

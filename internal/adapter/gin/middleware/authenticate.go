package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"estate-service/internal/domain/principal"
	"estate-service/pkg/apperr"
	"estate-service/pkg/logger"
	"estate-service/pkg/token"
)

// PrincipalResolver turns a verified token subject back into a principal.
// A (nil, nil) result means the subject no longer resolves to a stored
// account.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, id string) (*principal.Principal, error)
}

// Authenticate verifies the bearer credential and resolves the principal it
// belongs to. An absent or non-bearer Authorization header is a missing
// credential; a credential that fails verification, or whose subject no
// longer exists, is an invalid one. The existence check runs here, before
// any role guard.
func Authenticate(tokens token.Service, resolver PrincipalResolver, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			fail(c, apperr.MissingToken())
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			fail(c, apperr.MissingToken())
			return
		}

		subject, err := tokens.Verify(parts[1])
		if err != nil {
			log.Warn("token verification failed", zap.Error(err))
			fail(c, apperr.InvalidToken())
			return
		}

		p, err := resolver.ResolvePrincipal(c.Request.Context(), subject)
		if err != nil {
			fail(c, err)
			return
		}
		if p == nil {
			log.Warn("token subject no longer exists", zap.String("subject", subject))
			fail(c, apperr.InvalidToken())
			return
		}

		SetPrincipal(c, p)
		ctx := context.WithValue(c.Request.Context(), logger.PrincipalIDKey, p.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

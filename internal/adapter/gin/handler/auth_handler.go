package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"estate-service/internal/adapter/gin/middleware"
	"estate-service/internal/domain/principal"
	"estate-service/internal/usecase/auth"
)

// AuthHandler handles HTTP requests for registration, login, and the
// current-account endpoint.
type AuthHandler struct {
	uc  *auth.Usecase
	log *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(uc *auth.Usecase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	payload := middleware.PayloadFrom(c)

	resp, err := h.uc.Register(c.Request.Context(), auth.RegisterRequest{
		Name:     str(payload, "name"),
		Email:    str(payload, "email"),
		Password: str(payload, "password"),
		Role:     principal.Role(str(payload, "role")),
	})
	if err != nil {
		abort(c, err)
		return
	}

	respondCreated(c, "Account registered", "auth", resp)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	payload := middleware.PayloadFrom(c)

	resp, err := h.uc.Login(c.Request.Context(), auth.LoginRequest{
		Email:    str(payload, "email"),
		Password: str(payload, "password"),
	})
	if err != nil {
		abort(c, err)
		return
	}

	respondOK(c, "Login successful", "auth", resp)
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	respondOK(c, "", "account", auth.Account{
		ID:       p.ID,
		Name:     p.Name,
		Email:    p.Email,
		Role:     p.Role,
		Verified: p.Verified,
	})
}

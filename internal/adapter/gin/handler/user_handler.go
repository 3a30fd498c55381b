package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"estate-service/internal/usecase/user"
)

// UserHandler handles the admin-facing account management endpoints.
type UserHandler struct {
	uc  *user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(uc *user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// List handles GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	page, err := h.uc.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		abort(c, err)
		return
	}

	respondPage(c, page.Result, page.Pagination)
}

// Get handles GET /api/v1/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	account, err := h.uc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}

	respondOK(c, "", "user", account)
}

// Delete handles DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abort(c, err)
		return
	}

	respondMessage(c, "User deleted")
}

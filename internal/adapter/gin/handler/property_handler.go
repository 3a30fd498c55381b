package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"estate-service/internal/adapter/gin/middleware"
	domain "estate-service/internal/domain/property"
	"estate-service/internal/usecase/property"
)

// PropertyHandler handles HTTP requests for property listings.
type PropertyHandler struct {
	uc  *property.Usecase
	log *zap.Logger
}

// NewPropertyHandler creates a new PropertyHandler instance.
func NewPropertyHandler(uc *property.Usecase, log *zap.Logger) *PropertyHandler {
	return &PropertyHandler{uc: uc, log: log}
}

// PropertyResponse represents the HTTP response for property data.
type PropertyResponse struct {
	ID          string    `json:"id"`
	VendorID    string    `json:"vendorId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Price       float64   `json:"price"`
	City        string    `json:"city"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toPropertyResponse(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:          p.ID,
		VendorID:    p.VendorID,
		Title:       p.Title,
		Description: p.Description,
		Category:    string(p.Category),
		Status:      string(p.Status),
		Price:       p.Price,
		City:        p.City,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPropertyResponses(properties []domain.Property) []PropertyResponse {
	out := make([]PropertyResponse, len(properties))
	for i := range properties {
		out[i] = toPropertyResponse(&properties[i])
	}
	return out
}

// Create handles POST /api/v1/properties
func (h *PropertyHandler) Create(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	payload := middleware.PayloadFrom(c)

	created, err := h.uc.Create(c.Request.Context(), p.ID, property.CreateRequest{
		Title:       str(payload, "title"),
		Description: str(payload, "description"),
		Category:    domain.Category(str(payload, "category")),
		Price:       num(payload, "price"),
		City:        str(payload, "city"),
	})
	if err != nil {
		abort(c, err)
		return
	}

	respondCreated(c, "Property created", "property", toPropertyResponse(created))
}

// Get handles GET /api/v1/properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	found, err := h.uc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}

	respondOK(c, "", "property", toPropertyResponse(found))
}

// Update handles PATCH /api/v1/properties/:id
func (h *PropertyHandler) Update(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	payload := middleware.PayloadFrom(c)

	updated, err := h.uc.Update(c.Request.Context(), p, c.Param("id"), property.UpdateRequest{
		Title:       str(payload, "title"),
		Description: str(payload, "description"),
		Status:      domain.Status(str(payload, "status")),
		Price:       num(payload, "price"),
		City:        str(payload, "city"),
	})
	if err != nil {
		abort(c, err)
		return
	}

	respondOK(c, "Property updated", "property", toPropertyResponse(updated))
}

// Delete handles DELETE /api/v1/properties/:id
func (h *PropertyHandler) Delete(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	if err := h.uc.Delete(c.Request.Context(), p, c.Param("id")); err != nil {
		abort(c, err)
		return
	}

	respondMessage(c, "Property deleted")
}

// List handles GET /api/v1/properties
func (h *PropertyHandler) List(c *gin.Context) {
	page, err := h.uc.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		abort(c, err)
		return
	}

	respondPage(c, toPropertyResponses(page.Result), page.Pagination)
}

// Mine handles GET /api/v1/properties/mine
func (h *PropertyHandler) Mine(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	page, err := h.uc.Mine(c.Request.Context(), p.ID, c.Request.URL.Query())
	if err != nil {
		abort(c, err)
		return
	}

	respondPage(c, toPropertyResponses(page.Result), page.Pagination)
}

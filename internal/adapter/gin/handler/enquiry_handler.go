package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"estate-service/internal/adapter/gin/middleware"
	domain "estate-service/internal/domain/enquiry"
	"estate-service/internal/usecase/enquiry"
)

// EnquiryHandler handles HTTP requests for property enquiries.
type EnquiryHandler struct {
	uc  *enquiry.Usecase
	log *zap.Logger
}

// NewEnquiryHandler creates a new EnquiryHandler instance.
func NewEnquiryHandler(uc *enquiry.Usecase, log *zap.Logger) *EnquiryHandler {
	return &EnquiryHandler{uc: uc, log: log}
}

// EnquiryResponse represents the HTTP response for enquiry data.
type EnquiryResponse struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	UserID     string    `json:"userId"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toEnquiryResponse(e *domain.Enquiry) EnquiryResponse {
	return EnquiryResponse{
		ID:         e.ID,
		PropertyID: e.PropertyID,
		UserID:     e.UserID,
		Message:    e.Message,
		Status:     string(e.Status),
		CreatedAt:  e.CreatedAt,
	}
}

// Create handles POST /api/v1/enquiries
func (h *EnquiryHandler) Create(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	payload := middleware.PayloadFrom(c)

	created, err := h.uc.Create(c.Request.Context(), p.ID, enquiry.CreateRequest{
		PropertyID: str(payload, "property_id"),
		Message:    str(payload, "message"),
	})
	if err != nil {
		abort(c, err)
		return
	}

	respondCreated(c, "Enquiry created", "enquiry", toEnquiryResponse(created))
}

// List handles GET /api/v1/enquiries
func (h *EnquiryHandler) List(c *gin.Context) {
	p := middleware.PrincipalFrom(c)

	page, err := h.uc.ListFor(c.Request.Context(), p, c.Request.URL.Query())
	if err != nil {
		abort(c, err)
		return
	}

	result := make([]EnquiryResponse, len(page.Result))
	for i := range page.Result {
		result[i] = toEnquiryResponse(&page.Result[i])
	}

	respondPage(c, result, page.Pagination)
}

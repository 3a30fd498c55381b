// Package enquiry implements buyer enquiries against property listings.
package enquiry

import (
	"context"
	"net/url"
	"time"

	"go.uber.org/zap"

	domain "estate-service/internal/domain/enquiry"
	"estate-service/internal/domain/principal"
	propertydomain "estate-service/internal/domain/property"
	"estate-service/internal/listing"
	"estate-service/pkg/apperr"
	"estate-service/pkg/identifier"
)

// Repository defines the enquiry persistence operations the usecase needs.
type Repository interface {
	listing.Collection[domain.Enquiry]
	Create(ctx context.Context, e *domain.Enquiry) error
}

// PropertyLookup is the slice of the property repository the enquiry
// usecase depends on.
type PropertyLookup interface {
	GetByID(ctx context.Context, id string) (*propertydomain.Property, error)
	IDsByVendor(ctx context.Context, vendorID string) ([]string, error)
}

// CreateRequest represents the payload for raising an enquiry.
type CreateRequest struct {
	PropertyID string
	Message    string
}

// filters is the declared filter map for enquiry listings.
var filters = listing.FilterMap{
	"property": {Path: "property_id"},
	"status":   {Path: "status"},
	"date":     {Path: "created_at", Date: true},
}

// Usecase implements the business logic for enquiries.
type Usecase struct {
	repo       Repository
	properties PropertyLookup
	log        *zap.Logger
}

// New creates a new enquiry Usecase.
func New(r Repository, properties PropertyLookup, log *zap.Logger) *Usecase {
	return &Usecase{repo: r, properties: properties, log: log}
}

// Create raises an enquiry from the acting user against an existing
// property. The property existence check runs before any write.
func (uc *Usecase) Create(ctx context.Context, userID string, in CreateRequest) (*domain.Enquiry, error) {
	p, err := uc.properties.GetByID(ctx, in.PropertyID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("Property")
	}

	e := &domain.Enquiry{
		ID:         identifier.New(),
		PropertyID: in.PropertyID,
		UserID:     userID,
		Message:    in.Message,
		Status:     domain.StatusOpen,
		CreatedAt:  time.Now().UTC(),
	}

	if err := uc.repo.Create(ctx, e); err != nil {
		uc.log.Error("failed to create enquiry", zap.Error(err))
		return nil, apperr.WriteFailure("Unable to create enquiry", err)
	}

	uc.log.Info("enquiry created", zap.String("id", e.ID), zap.String("property_id", e.PropertyID))
	return e, nil
}

// ListFor returns a page of enquiries visible to the acting principal:
// admins see everything, vendors see enquiries against their own listings.
func (uc *Usecase) ListFor(ctx context.Context, actor *principal.Principal, query url.Values) (*listing.Page[domain.Enquiry], error) {
	var base []listing.Condition

	if actor.Role == principal.RoleVendor {
		ids, err := uc.properties.IDsByVendor(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		values := make([]any, len(ids))
		for i, id := range ids {
			values[i] = id
		}
		base = append(base, listing.In("property_id", values...))
	}

	page, err := listing.Paginate(ctx, query, uc.repo, filters, listing.NewestFirst, base...)
	if err != nil {
		uc.log.Error("failed to list enquiries", zap.Error(err))
		return nil, err
	}
	return page, nil
}

// Package property implements property listing management: public browsing
// with declared filters and vendor-owned write operations.
package property

import (
	"context"
	"net/url"
	"time"

	"go.uber.org/zap"

	domain "estate-service/internal/domain/property"
	"estate-service/internal/domain/principal"
	"estate-service/internal/listing"
	"estate-service/pkg/apperr"
	"estate-service/pkg/identifier"
)

// Repository defines the property persistence operations the usecase needs.
type Repository interface {
	listing.Collection[domain.Property]
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id string) (bool, error)
}

// CreateRequest represents the payload for creating a property listing.
type CreateRequest struct {
	Title       string
	Description string
	Category    domain.Category
	Price       float64
	City        string
}

// UpdateRequest represents the payload for updating a property listing.
// Zero values leave the corresponding field unchanged.
type UpdateRequest struct {
	Title       string
	Description string
	Status      domain.Status
	Price       float64
	City        string
}

// filters is the declared filter map for public property listings.
var filters = listing.FilterMap{
	"city":     {Path: "city"},
	"category": {Path: "category"},
	"status":   {Path: "status"},
	"date":     {Path: "created_at", Date: true},
}

// Usecase implements the business logic for property listings.
type Usecase struct {
	repo Repository
	log  *zap.Logger
}

// New creates a new property Usecase.
func New(r Repository, log *zap.Logger) *Usecase {
	return &Usecase{repo: r, log: log}
}

// Create adds a new listing owned by the acting vendor.
func (uc *Usecase) Create(ctx context.Context, vendorID string, in CreateRequest) (*domain.Property, error) {
	now := time.Now().UTC()
	p := &domain.Property{
		ID:          identifier.New(),
		VendorID:    vendorID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Status:      domain.StatusAvailable,
		Price:       in.Price,
		City:        in.City,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		uc.log.Error("failed to create property", zap.Error(err))
		return nil, apperr.WriteFailure("Unable to create property", err)
	}

	uc.log.Info("property created", zap.String("id", p.ID), zap.String("vendor_id", vendorID))
	return p, nil
}

// Get returns a single listing by ID.
func (uc *Usecase) Get(ctx context.Context, id string) (*domain.Property, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("Property")
	}
	return p, nil
}

// Update modifies a listing. Only the verified owning vendor (or an admin)
// may update it.
func (uc *Usecase) Update(ctx context.Context, actor *principal.Principal, id string, in UpdateRequest) (*domain.Property, error) {
	p, err := uc.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		p.Title = in.Title
	}
	if in.Description != "" {
		p.Description = in.Description
	}
	if in.Status != "" {
		p.Status = in.Status
	}
	if in.Price > 0 {
		p.Price = in.Price
	}
	if in.City != "" {
		p.City = in.City
	}
	p.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, p); err != nil {
		uc.log.Error("failed to update property", zap.String("id", id), zap.Error(err))
		return nil, apperr.WriteFailure("Unable to update property", err)
	}

	uc.log.Info("property updated", zap.String("id", id))
	return p, nil
}

// Delete removes a listing. Only the verified owning vendor (or an admin)
// may delete it.
func (uc *Usecase) Delete(ctx context.Context, actor *principal.Principal, id string) error {
	if _, err := uc.authorize(ctx, actor, id); err != nil {
		return err
	}

	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return apperr.WriteFailure("Unable to delete property", err)
	}
	if !deleted {
		return apperr.NotFound("Property")
	}

	uc.log.Info("property deleted", zap.String("id", id))
	return nil
}

// List returns a page of listings matching the declared public filters.
func (uc *Usecase) List(ctx context.Context, query url.Values) (*listing.Page[domain.Property], error) {
	page, err := listing.Paginate(ctx, query, uc.repo, filters, listing.NewestFirst)
	if err != nil {
		uc.log.Error("failed to list properties", zap.Error(err))
		return nil, err
	}
	return page, nil
}

// Mine returns a page of the acting vendor's own listings, with the same
// declared filters applied on top of the ownership scope.
func (uc *Usecase) Mine(ctx context.Context, vendorID string, query url.Values) (*listing.Page[domain.Property], error) {
	page, err := listing.Paginate(ctx, query, uc.repo, filters, listing.NewestFirst,
		listing.Eq("vendor_id", vendorID))
	if err != nil {
		uc.log.Error("failed to list vendor properties", zap.String("vendor_id", vendorID), zap.Error(err))
		return nil, err
	}
	return page, nil
}

// authorize loads a listing and checks the actor may modify it. Admins may
// modify anything; a vendor must own the listing and still hold a verified
// account, so revoking verification also revokes write access.
func (uc *Usecase) authorize(ctx context.Context, actor *principal.Principal, id string) (*domain.Property, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("Property")
	}
	if actor.Role == principal.RoleAdmin {
		return p, nil
	}
	if p.VendorID != actor.ID || !actor.IsVerifiedVendor() {
		uc.log.Warn("property write rejected",
			zap.String("id", id),
			zap.String("actor_id", actor.ID),
			zap.String("owner_id", p.VendorID),
		)
		return nil, apperr.Forbidden("")
	}
	return p, nil
}

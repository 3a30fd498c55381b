package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"estate-service/internal/domain/property"
	"estate-service/internal/listing"
)

// PropertyRepoPG implements property persistence using PostgreSQL and GORM.
type PropertyRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewPropertyRepoPG creates a new instance of PropertyRepoPG.
func NewPropertyRepoPG(db *gorm.DB, log *zap.Logger) *PropertyRepoPG {
	return &PropertyRepoPG{db: db, log: log}
}

// PropertySchema represents the database schema for the properties table.
type PropertySchema struct {
	ID          string `gorm:"primaryKey;size:24"`
	VendorID    string `gorm:"not null;index;size:24"`
	Title       string `gorm:"not null"`
	Description string
	Category    string `gorm:"not null;index"`
	Status      string `gorm:"not null;index"`
	Price       float64
	City        string `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for the PropertySchema model.
func (PropertySchema) TableName() string {
	return "properties"
}

func (m *PropertySchema) toDomain() property.Property {
	return property.Property{
		ID:          m.ID,
		VendorID:    m.VendorID,
		Title:       m.Title,
		Description: m.Description,
		Category:    property.Category(m.Category),
		Status:      property.Status(m.Status),
		Price:       m.Price,
		City:        m.City,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toPropertyModel(p *property.Property) PropertySchema {
	return PropertySchema{
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

// Create inserts a new property listing into the database.
func (r *PropertyRepoPG) Create(ctx context.Context, p *property.Property) error {
	if p == nil {
		return errors.New("property cannot be nil")
	}

	model := toPropertyModel(p)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create property in db", zap.Error(err), zap.String("vendor_id", p.VendorID))
		return fmt.Errorf("failed to create property: %w", err)
	}

	r.log.Info("property created in db", zap.String("id", model.ID))
	return nil
}

// GetByID retrieves a property by ID. A missing property yields (nil, nil).
func (r *PropertyRepoPG) GetByID(ctx context.Context, id string) (*property.Property, error) {
	var model PropertySchema
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("property not found", zap.String("id", id))
			return nil, nil
		}
		r.log.Error("failed to get property from db", zap.Error(err), zap.String("id", id))
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	p := model.toDomain()
	return &p, nil
}

// Update saves the mutable fields of an existing property.
func (r *PropertyRepoPG) Update(ctx context.Context, p *property.Property) error {
	if p == nil {
		return errors.New("property cannot be nil")
	}

	model := toPropertyModel(p)
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		r.log.Error("failed to update property in db", zap.Error(err), zap.String("id", p.ID))
		return fmt.Errorf("failed to update property: %w", err)
	}

	r.log.Info("property updated in db", zap.String("id", p.ID))
	return nil
}

// Delete removes a property by ID and reports whether a row was deleted.
func (r *PropertyRepoPG) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&PropertySchema{})
	if res.Error != nil {
		r.log.Error("failed to delete property in db", zap.Error(res.Error), zap.String("id", id))
		return false, fmt.Errorf("failed to delete property: %w", res.Error)
	}

	r.log.Info("property deleted in db", zap.String("id", id), zap.Int64("rows", res.RowsAffected))
	return res.RowsAffected > 0, nil
}

// IDsByVendor returns the ids of every property owned by a vendor.
func (r *PropertyRepoPG) IDsByVendor(ctx context.Context, vendorID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&PropertySchema{}).
		Where("vendor_id = ?", vendorID).
		Pluck("id", &ids).Error
	if err != nil {
		r.log.Error("failed to list property ids by vendor", zap.Error(err), zap.String("vendor_id", vendorID))
		return nil, fmt.Errorf("failed to list property ids: %w", err)
	}
	return ids, nil
}

// Find implements listing.Collection for properties.
func (r *PropertyRepoPG) Find(ctx context.Context, pred listing.Predicate, offset, limit int, sort listing.Sort) ([]property.Property, error) {
	var models []PropertySchema
	tx := applyPredicate(r.db.WithContext(ctx), pred)
	if err := tx.Order(orderClause(sort)).Offset(offset).Limit(limit).Find(&models).Error; err != nil {
		r.log.Error("failed to list properties from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	properties := make([]property.Property, len(models))
	for i, model := range models {
		properties[i] = model.toDomain()
	}
	return properties, nil
}

// Count implements listing.Collection for properties.
func (r *PropertyRepoPG) Count(ctx context.Context, pred listing.Predicate) (int64, error) {
	var total int64
	tx := applyPredicate(r.db.WithContext(ctx).Model(&PropertySchema{}), pred)
	if err := tx.Count(&total).Error; err != nil {
		r.log.Error("failed to count properties in db", zap.Error(err))
		return 0, fmt.Errorf("failed to count properties: %w", err)
	}
	return total, nil
}

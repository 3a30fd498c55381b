package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"estate-service/internal/domain/enquiry"
	"estate-service/internal/listing"
)

// EnquiryRepoPG implements enquiry persistence using PostgreSQL and GORM.
type EnquiryRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewEnquiryRepoPG creates a new instance of EnquiryRepoPG.
func NewEnquiryRepoPG(db *gorm.DB, log *zap.Logger) *EnquiryRepoPG {
	return &EnquiryRepoPG{db: db, log: log}
}

// EnquirySchema represents the database schema for the enquiries table.
type EnquirySchema struct {
	ID         string `gorm:"primaryKey;size:24"`
	PropertyID string `gorm:"not null;index;size:24"`
	UserID     string `gorm:"not null;index;size:24"`
	Message    string `gorm:"not null"`
	Status     string `gorm:"not null;index"`
	CreatedAt  time.Time
}

// TableName specifies the table name for the EnquirySchema model.
func (EnquirySchema) TableName() string {
	return "enquiries"
}

func (m *EnquirySchema) toDomain() enquiry.Enquiry {
	return enquiry.Enquiry{
		ID:         m.ID,
		PropertyID: m.PropertyID,
		UserID:     m.UserID,
		Message:    m.Message,
		Status:     enquiry.Status(m.Status),
		CreatedAt:  m.CreatedAt,
	}
}

// Create inserts a new enquiry into the database.
func (r *EnquiryRepoPG) Create(ctx context.Context, e *enquiry.Enquiry) error {
	if e == nil {
		return errors.New("enquiry cannot be nil")
	}

	model := EnquirySchema{
		ID:         e.ID,
		PropertyID: e.PropertyID,
		UserID:     e.UserID,
		Message:    e.Message,
		Status:     string(e.Status),
		CreatedAt:  e.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create enquiry in db", zap.Error(err), zap.String("property_id", e.PropertyID))
		return fmt.Errorf("failed to create enquiry: %w", err)
	}

	r.log.Info("enquiry created in db", zap.String("id", model.ID))
	return nil
}

// Find implements listing.Collection for enquiries.
func (r *EnquiryRepoPG) Find(ctx context.Context, pred listing.Predicate, offset, limit int, sort listing.Sort) ([]enquiry.Enquiry, error) {
	var models []EnquirySchema
	tx := applyPredicate(r.db.WithContext(ctx), pred)
	if err := tx.Order(orderClause(sort)).Offset(offset).Limit(limit).Find(&models).Error; err != nil {
		r.log.Error("failed to list enquiries from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list enquiries: %w", err)
	}

	enquiries := make([]enquiry.Enquiry, len(models))
	for i, model := range models {
		enquiries[i] = model.toDomain()
	}
	return enquiries, nil
}

// Count implements listing.Collection for enquiries.
func (r *EnquiryRepoPG) Count(ctx context.Context, pred listing.Predicate) (int64, error) {
	var total int64
	tx := applyPredicate(r.db.WithContext(ctx).Model(&EnquirySchema{}), pred)
	if err := tx.Count(&total).Error; err != nil {
		r.log.Error("failed to count enquiries in db", zap.Error(err))
		return 0, fmt.Errorf("failed to count enquiries: %w", err)
	}
	return total, nil
}

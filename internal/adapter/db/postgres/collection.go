package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"estate-service/internal/listing"
)

// applyPredicate translates a listing predicate into WHERE clauses. Field
// paths come from declared filter maps and component constants only, never
// from client input.
func applyPredicate(tx *gorm.DB, pred listing.Predicate) *gorm.DB {
	for _, cond := range pred {
		switch cond.Op {
		case listing.OpEq:
			tx = tx.Where(cond.Path+" = ?", cond.Value)
		case listing.OpRange:
			tx = tx.Where(cond.Path+" >= ? AND "+cond.Path+" < ?", cond.Value, cond.Upper)
		case listing.OpIn:
			tx = tx.Where(cond.Path+" IN ?", cond.Values)
		}
	}
	return tx
}

// orderClause renders a listing sort as an ORDER BY expression.
func orderClause(sort listing.Sort) string {
	direction := "ASC"
	if sort.Desc {
		direction = "DESC"
	}
	return fmt.Sprintf("%s %s", sort.Path, direction)
}

// Migrate creates or updates the tables backing every repository.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserSchema{}, &PropertySchema{}, &EnquirySchema{})
}

package property

import "time"

// Category is the listing category for a property.
type Category string

const (
	CategorySale Category = "SALE"
	CategoryRent Category = "RENT"
)

// Status is the lifecycle status of a property listing.
type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusPending   Status = "PENDING"
	StatusSold      Status = "SOLD"
)

// Property represents a property listing owned by a vendor.
type Property struct {
	ID          string
	VendorID    string
	Title       string
	Description string
	Category    Category
	Status      Status
	Price       float64
	City        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

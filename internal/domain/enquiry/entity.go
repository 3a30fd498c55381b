package enquiry

import "time"

// Status is the handling status of an enquiry.
type Status string

const (
	StatusOpen   Status = "OPEN"
	StatusClosed Status = "CLOSED"
)

// Enquiry represents a buyer's enquiry about a property listing.
type Enquiry struct {
	ID         string
	PropertyID string
	UserID     string
	Message    string
	Status     Status
	CreatedAt  time.Time
}

package user

import (
	"time"

	"estate-service/internal/domain/principal"
)

// User represents a stored account: the persistent counterpart of a request
// Principal.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         principal.Role
	Verified     bool // vendor verification flag
	CreatedAt    time.Time
}

// Principal derives the request-scoped principal view of the user.
func (u *User) Principal() *principal.Principal {
	return &principal.Principal{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		Verified: u.Verified,
	}
}

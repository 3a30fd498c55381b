package auth

import "estate-service/internal/domain/principal"

// RegisterRequest represents the payload for creating a new account. The
// payload has already passed schema validation when it reaches the usecase.
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Role     principal.Role
}

// LoginRequest represents the payload for authenticating an account.
type LoginRequest struct {
	Email    string
	Password string
}

// Account is the client-facing view of an account, without credentials.
type Account struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Role     principal.Role `json:"role"`
	Verified bool           `json:"verified"`
}

// AuthResponse carries a freshly issued token and the account it belongs to.
type AuthResponse struct {
	Token   string  `json:"token"`
	Account Account `json:"account"`
}

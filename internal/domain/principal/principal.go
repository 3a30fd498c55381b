// Package principal defines the authenticated actor reconstructed once per
// request from a verified token, and the role vocabulary guards operate on.
package principal

// Role is the fixed role enumeration for principals.
type Role string

const (
	RoleUser   Role = "USER"
	RoleAdmin  Role = "ADMIN"
	RoleVendor Role = "VENDOR"
	RoleEditor Role = "EDITOR"
)

// Roles lists every valid role, in declaration order.
func Roles() []Role {
	return []Role{RoleUser, RoleAdmin, RoleVendor, RoleEditor}
}

// Valid reports whether r is a member of the role enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleVendor, RoleEditor:
		return true
	}
	return false
}

// Principal is the authenticated actor for one request. It is derived from a
// verified token plus a lookup and discarded at response time; it is never
// persisted or shared across requests.
type Principal struct {
	ID       string
	Name     string
	Email    string
	Role     Role
	Verified bool // vendor verification flag; meaningless for other roles
}

// IsVerifiedVendor reports whether the principal is a vendor whose account
// has been verified.
func (p *Principal) IsVerifiedVendor() bool {
	return p.Role == RoleVendor && p.Verified
}

// HasAnyRole reports whether the principal's role is one of roles.
func (p *Principal) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

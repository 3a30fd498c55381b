// Package identifier generates and validates the 24-character hex
// identifiers used as primary keys for every stored entity.
package identifier

import (
	"encoding/hex"
	"regexp"

	"github.com/google/uuid"
)

var idPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// New returns a fresh 24-character lowercase hex identifier. Entropy comes
// from a v4 UUID; the first 12 random bytes are hex-encoded.
func New() string {
	u := uuid.New()
	return hex.EncodeToString(u[:12])
}

// IsValid reports whether s has the lexical shape of an entity identifier.
// It never touches storage; "well-formed but unknown" is a data-layer
// outcome discovered later.
func IsValid(s string) bool {
	return idPattern.MatchString(s)
}

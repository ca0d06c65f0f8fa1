package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// NewID generates a random version-4 UUID in canonical form.
func NewID() string {
	return uuid.NewString()
}

// IsUUIDv4 reports whether s is a canonical lowercase, hyphenated
// version-4 UUID with an RFC 4122 variant nibble.
func IsUUIDv4(s string) bool {
	return validate.Var(s, "uuid4") == nil
}

package utils

import (
	"github.com/google/uuid"
)

// GenerateTokenKey mints an opaque bearer token key.
func GenerateTokenKey() string {
	return uuid.NewString()
}

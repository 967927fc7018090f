// internal/utils/helpers.go
// General utility functions

package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateUUID generates a new UUID
func GenerateUUID() string {
	return uuid.New().String()
}

// GenerateRequestID generates a unique request ID
func GenerateRequestID() string {
	return fmt.Sprintf("req_%s", GenerateUUID())
}

// StringPtr returns a pointer to a string, or nil for an empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Uint32Ptr returns a pointer to a uint32, or nil when v is zero.
func Uint32Ptr(v uint32) *uint32 {
	if v == 0 {
		return nil
	}
	return &v
}

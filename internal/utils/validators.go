// internal/utils/validators.go
// Validation utility functions not already covered by the engine's own
// parsing (models.ValidTimeCategory, engine.ParsePlayerStatus, etc).

package utils

import (
	"fmt"
	"net/mail"
	"regexp"
)

// ValidateEmail validates an optional contact email address.
func ValidateEmail(email string) error {
	_, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidatePassword validates password strength at registration time.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !regexp.MustCompile(`[A-Z]`).MatchString(password) {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !regexp.MustCompile(`[a-z]`).MatchString(password) {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !regexp.MustCompile(`[0-9]`).MatchString(password) {
		return fmt.Errorf("password must contain at least one number")
	}
	return nil
}

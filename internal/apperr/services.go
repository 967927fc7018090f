// internal/apperr/services.go
// Maps internal/services sentinel errors onto apperr values.

package apperr

import (
	"errors"

	"swiss-pairing-engine/internal/services"
)

var serviceErrors = map[error]*Error{
	services.ErrUsernameTaken:      UsernameTaken,
	services.ErrInvalidCredentials: LoginFailed,
	services.ErrInvalidToken:       TokenInvalid,
	services.ErrWeakPassword:       WeakPassword,
	services.ErrInvalidEmail:       InvalidEmail,
}

// FromService maps a services-layer sentinel error to its apperr value,
// falling back to the engine mapping (and ultimately Unknown) for
// anything unrecognized.
func FromService(err error) *Error {
	for sentinel, mapped := range serviceErrors {
		if errors.Is(err, sentinel) {
			return mapped
		}
	}
	return FromEngine(err)
}

// internal/middleware/error_handler.go
// Single seam turning a service-layer error into the JSON error envelope
// spec.md §7 describes: {"error": {"code": ..., "message": ...}}.

package middleware

import (
	"errors"

	"swiss-pairing-engine/internal/apperr"

	"github.com/gin-gonic/gin"
)

// RespondError writes the apperr-mapped JSON body for err and aborts the
// request chain with the matching HTTP status.
func RespondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.FromService(err)
	}

	c.AbortWithStatusJSON(appErr.HTTPStatus, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}

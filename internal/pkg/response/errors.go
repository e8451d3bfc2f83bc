package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"starwarsblog/internal/domain"
)

// FromError writes the status and error body matching a domain error.
// Unknown errors are attached to the context for the error logger and
// reported as 500.
func FromError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", verr.Error(), gin.H{"field": verr.Field})
	case errors.Is(err, domain.ErrNotFound):
		Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrDuplicateKey):
		Error(c, http.StatusConflict, "CONFLICT", err.Error())
	default:
		_ = c.Error(err)
		Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}

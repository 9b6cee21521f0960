package handlers

import (
	"net/http"

	"arheb/internal/domain"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsAuthentication(err):
		RespondError(c, http.StatusUnauthorized, err.Error(), nil)
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsForbidden(err), domain.IsPermission(err):
		RespondError(c, http.StatusForbidden, err.Error(), nil)
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, err.Error(), nil)
	default:
		RespondError(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}

package handlers

import (
	"net/http"

	"roadbuddy/internal/domain"
	"roadbuddy/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondError writes the standard failure envelope.
func RespondError(c *gin.Context, status int, message string) {
	payload := gin.H{
		"success": false,
		"error":   message,
	}
	if reqID := middleware.GetRequestID(c); reqID != "" {
		payload["request_id"] = reqID
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error())
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error())
	case domain.IsNoSeats(err):
		RespondError(c, http.StatusBadRequest, err.Error())
	default:
		RespondError(c, http.StatusInternalServerError, "internal server error")
	}
}

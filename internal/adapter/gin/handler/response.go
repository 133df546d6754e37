package handler

import (
	"net/http"

	apperrors "user-directory-service/pkg/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// writeError converts usecase errors to HTTP responses. Store and unknown
// errors never leak their details to the client.
func writeError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)

	switch status {
	case http.StatusBadRequest:
		c.JSON(status, ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
	case http.StatusNotFound:
		c.JSON(status, ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		})
	}
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brandonkimmmm/backend-coding-test/internal/logger"
	"github.com/brandonkimmmm/backend-coding-test/internal/repository"
	"github.com/brandonkimmmm/backend-coding-test/internal/service"
	"github.com/brandonkimmmm/backend-coding-test/internal/validation"
)

// Error codes exposed to clients.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeRidesNotFound   = "RIDES_NOT_FOUND_ERROR"
	CodeServerError     = "SERVER_ERROR"
	CodeRequestError    = "REQUEST_ERROR"
)

// ErrorResponse is the error body shape for every failure.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

// respondError maps service and repository errors to status codes and
// error bodies. Unclassified failures stay generic towards the client;
// the detail goes to the correlated log entry only.
func (h *RideHandler) respondError(c *gin.Context, err error) {
	var fieldErr *validation.FieldError

	switch {
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			ErrorCode: CodeValidationError,
			Message:   fieldErr.Message,
		})

	case errors.Is(err, repository.ErrNotFound), errors.Is(err, service.ErrNoRides):
		c.JSON(http.StatusNotFound, ErrorResponse{
			ErrorCode: CodeRidesNotFound,
			Message:   "Could not find any rides",
		})

	default:
		logger.Ctx(c.Request.Context(), h.log).Error("request failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			ErrorCode: CodeServerError,
			Message:   "Unknown error",
		})
	}
}

package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/namalnexus/backend/internal/app/models/dto"
	"github.com/namalnexus/backend/internal/pkg/apperrors"
	"github.com/namalnexus/backend/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the response envelope. Unknown
// errors are logged and reported as a generic 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Validation failed", apperrors.MessagesOf(err)...))
	case errors.Is(err, apperrors.ErrMalformedIdentifier):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Invalid ID format. Must be a valid numeric ID."))
	case errors.Is(err, apperrors.ErrAlumniNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Alumni not found"))
	case errors.Is(err, apperrors.ErrJobNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Job not found"))
	case errors.Is(err, apperrors.ErrEventNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Event not found"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Resource not found"))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Alumni with this email already exists"))
	case errors.Is(err, apperrors.ErrInvalidPostedBy):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Invalid alumni ID for postedBy field"))
	case errors.Is(err, apperrors.ErrRegistrationClosed):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Registration is closed for this event"))
	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Alumni is already registered for this event"))
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	default:
		logger.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}
